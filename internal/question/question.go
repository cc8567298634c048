// Package question defines the stack questionnaire and the answers it collects.
package question

import "slices"

// Kind is the type of prompt shown for a question.
type Kind string

const (
	// KindConfirm is a yes/no prompt answered with a bool.
	KindConfirm Kind = "confirm"
	// KindSelect is a single choice from a fixed list, answered with a string.
	KindSelect Kind = "select"
)

// Question ids, in the order they are asked.
const (
	IsTypeScript  = "is_typescript"
	Framework     = "framework"
	UIFramework   = "ui_framework"
	CSSFramework  = "css_framework"
	Database      = "database"
	ORM           = "orm"
	CloudPlatform = "cloud_platform"
)

// Question describes a single prompt.
type Question struct {
	ID      string
	Kind    Kind
	Message string
	// Label is the short name used when answers are shown as a table.
	Label   string
	Choices []string
	// Default is a bool for confirm questions and a choice (or "") for selects.
	Default  any
	Carousel bool
}

// DefaultBool returns the confirm default, false when unset.
func (q Question) DefaultBool() bool {
	b, _ := q.Default.(bool)
	return b
}

// DefaultIndex returns the index of the default choice, or 0 when the
// question has no default.
func (q Question) DefaultIndex() int {
	s, _ := q.Default.(string)
	if i := slices.Index(q.Choices, s); i >= 0 {
		return i
	}
	return 0
}

// HasChoice reports whether s is exactly one of the question's choices.
func (q Question) HasChoice(s string) bool {
	return slices.Contains(q.Choices, s)
}

var catalog = []Question{
	{
		ID:      IsTypeScript,
		Kind:    KindConfirm,
		Message: "Do you want to use TypeScript?",
		Label:   "Language",
		Default: true,
	},
	{
		ID:      Framework,
		Kind:    KindSelect,
		Message: "Choose a framework",
		Label:   "Framework",
		Choices: []string{
			"Express",
			"Hono",
			"Nest",
			"Next",
			"Nuxt",
			"SvelteKit",
			"SolidStart",
			"Vite+React",
			"Vite+Vue",
			"Vite+Svelte",
			"Vite+Solid",
		},
		Carousel: true,
	},
	{
		ID:      UIFramework,
		Kind:    KindSelect,
		Message: "Choose a UI framework",
		Label:   "UI Framework",
		Choices: []string{
			"None",
			"shadcn/ui",
			"Tailwind UI",
			"Daisy UI",
			"Material UI",
			"Chakra",
			"Semantic UI",
		},
		Carousel: true,
	},
	{
		ID:      CSSFramework,
		Kind:    KindSelect,
		Message: "Choose a CSS framework",
		Label:   "CSS Framework",
		Choices: []string{
			"None",
			"TailwindCSS",
			"Emotion",
			"StyledCSS",
			"Bootstrap",
		},
		Carousel: true,
	},
	{
		ID:       Database,
		Kind:     KindSelect,
		Message:  "Choose a relational database management system",
		Label:    "Database",
		Choices:  []string{"None", "PostgreSQL", "MySQL", "SQLite"},
		Carousel: true,
	},
	{
		ID:       ORM,
		Kind:     KindSelect,
		Message:  "Choose an object-relational mapper",
		Label:    "ORM",
		Choices:  []string{"None", "Prisma", "Drizzle"},
		Carousel: true,
	},
	{
		ID:      CloudPlatform,
		Kind:    KindSelect,
		Message: "Where will you be deploying to?",
		Label:   "Cloud Platform",
		Choices: []string{
			"None",
			"GCP Cloud Run",
			"GCP Cloud Functions",
			"GCP App Engine",
			"AWS Lambda",
			"AWS ECS",
			"Azure Container Service",
			"Vercel",
		},
		Carousel: true,
	},
}

// Catalog returns the questionnaire in the order it is asked. Each call
// returns a fresh copy.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	for i, q := range catalog {
		q.Choices = slices.Clone(q.Choices)
		out[i] = q
	}
	return out
}

// Find returns the question with the given id.
func Find(questions []Question, id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
