package question

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Answer is a single question id and the value picked for it.
type Answer struct {
	ID    string
	Value any
}

// AnswerSet maps question ids to answers, keeping the order in which they
// were set.
type AnswerSet struct {
	answers []Answer
}

// Set records the answer for id, replacing any earlier answer in place.
func (s *AnswerSet) Set(id string, value any) {
	for i := range s.answers {
		if s.answers[i].ID == id {
			s.answers[i].Value = value
			return
		}
	}
	s.answers = append(s.answers, Answer{ID: id, Value: value})
}

// Get returns the answer for id.
func (s AnswerSet) Get(id string) (any, bool) {
	for _, a := range s.answers {
		if a.ID == id {
			return a.Value, true
		}
	}
	return nil, false
}

// Bool returns the answer for id as a bool.
func (s AnswerSet) Bool(id string) bool {
	v, _ := s.Get(id)
	b, _ := v.(bool)
	return b
}

// String returns the answer for id as a string.
func (s AnswerSet) String(id string) string {
	v, _ := s.Get(id)
	str, _ := v.(string)
	return str
}

// Keys returns the question ids in answer order.
func (s AnswerSet) Keys() []string {
	keys := make([]string, len(s.answers))
	for i, a := range s.answers {
		keys[i] = a.ID
	}
	return keys
}

// Answers returns a copy of the answers in order.
func (s AnswerSet) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Len returns the number of answers.
func (s AnswerSet) Len() int { return len(s.answers) }

// ValidationError describes an answer set that does not fit its questions.
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return "invalid answers: " + e.Reason
	}
	return fmt.Sprintf("invalid answer for %s: %s", e.ID, e.Reason)
}

// Validate checks that s holds exactly one in-domain answer per question.
func (s AnswerSet) Validate(questions []Question) error {
	if len(s.answers) != len(questions) {
		return &ValidationError{Reason: fmt.Sprintf("got %d answers for %d questions", len(s.answers), len(questions))}
	}
	for _, q := range questions {
		v, ok := s.Get(q.ID)
		if !ok {
			return &ValidationError{ID: q.ID, Reason: "missing"}
		}
		switch q.Kind {
		case KindConfirm:
			if _, ok := v.(bool); !ok {
				return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("want bool, got %T", v)}
			}
		case KindSelect:
			str, ok := v.(string)
			if !ok {
				return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("want string, got %T", v)}
			}
			if !q.HasChoice(str) {
				return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("%q is not a choice", str)}
			}
		default:
			return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("unknown kind %q", q.Kind)}
		}
	}
	return nil
}

// MarshalJSON encodes the set as a JSON object in answer order.
func (s AnswerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range s.answers {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(a.ID)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the set as a YAML mapping in answer order.
func (s AnswerSet) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range s.answers {
		var val yaml.Node
		if err := val.Encode(a.Value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", a.ID, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.ID},
			&val,
		)
	}
	return node, nil
}
