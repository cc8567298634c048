// Package render prints a collected AnswerSet.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/tui"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatDict  = "dict"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatDict, FormatJSON, FormatYAML, FormatTable}
}

// CheckFormat returns an error unless format is supported.
func CheckFormat(format string) error {
	for _, f := range Formats() {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// Write renders answers to w in the given format. The questions supply
// labels for the table format.
func Write(w io.Writer, format string, answers question.AnswerSet, questions []question.Question) error {
	switch format {
	case FormatDict:
		return writeDict(w, answers)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answers)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(answers); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		_, err := io.WriteString(w, Table(answers, questions)+"\n")
		return err
	default:
		return CheckFormat(format)
	}
}

// writeDict prints the answers as an expanded mapping literal:
//
//	{
//	    'is_typescript': True,
//	    'framework': 'Next'
//	}
func writeDict(w io.Writer, answers question.AnswerSet) error {
	var b strings.Builder
	b.WriteString("{\n")
	list := answers.Answers()
	for i, a := range list {
		fmt.Fprintf(&b, "    %s: %s", quote(a.ID), literal(a.Value))
		if i < len(list)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func literal(v any) string {
	switch v := v.(type) {
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return quote(v)
	case nil:
		return "None"
	default:
		return fmt.Sprint(v)
	}
}

// quote uses single quotes unless the string contains one.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
}

// Table renders the answers as the "Tech Stack" status box.
func Table(answers question.AnswerSet, questions []question.Question) string {
	var b strings.Builder
	b.WriteString(tui.StatusHeaderStyle.Render("Tech Stack"))
	b.WriteString("\n")

	for _, a := range answers.Answers() {
		label := a.ID
		q, ok := question.Find(questions, a.ID)
		if ok && q.Label != "" {
			label = q.Label
		}
		b.WriteString("\n")
		b.WriteString(tui.StatusHeaderStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(tui.ValueStyle.Render(display(a, q, ok)))
		b.WriteString("\n")
	}

	return tui.StatusStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func display(a question.Answer, q question.Question, known bool) string {
	switch v := a.Value.(type) {
	case bool:
		if known && q.ID == question.IsTypeScript {
			if v {
				return "TypeScript"
			}
			return "JavaScript"
		}
		if v {
			return "Yes"
		}
		return "No"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

