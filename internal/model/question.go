package model

import (
	"encoding/json"
	"fmt"
)

// Category is one of the four fixed sustainability dimensions.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryEnvironment Category = "environment"
	CategorySocial      Category = "social"
	CategoryGovernance  Category = "governance"
)

// Categories returns the four dimensions in catalog section order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryEnvironment, CategorySocial, CategoryGovernance}
}

// Title returns the display form used in narrative text, e.g. "Environment".
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return string(s[0]-'a'+'A') + s[1:]
}

// QuestionOption is one selectable answer with its score contribution.
type QuestionOption struct {
	Value string  `json:"value" bson:"value"`
	Score float64 `json:"score" bson:"score"`
	Text  string  `json:"text" bson:"text"`
}

// Question is a single questionnaire item. Questions are immutable and
// come from the fixed catalog, never from user input.
type Question struct {
	ID       string           `json:"id" bson:"id"`
	Text     string           `json:"text" bson:"text"`
	Category Category         `json:"category" bson:"category"`
	Weight   float64          `json:"weight" bson:"weight"`
	Options  []QuestionOption `json:"options" bson:"options"`
	Required bool             `json:"required" bson:"required"`
}

// AnswerValue is a submitted answer: either the key of one of the
// question's options or a raw numeric score. Both shapes arrive as
// untyped JSON, so the unmarshaler tags which one it got.
type AnswerValue struct {
	Key     string  `json:"key,omitempty" bson:"key,omitempty"`
	Score   float64 `json:"score,omitempty" bson:"score,omitempty"`
	Numeric bool    `json:"numeric,omitempty" bson:"numeric,omitempty"`
}

// OptionAnswer wraps an option key as an AnswerValue.
func OptionAnswer(key string) AnswerValue {
	return AnswerValue{Key: key}
}

// NumericAnswer wraps a raw score as an AnswerValue.
func NumericAnswer(score float64) AnswerValue {
	return AnswerValue{Score: score, Numeric: true}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op on *string, so catch it
	// before the string attempt.
	if string(data) == "null" {
		return fmt.Errorf("answer value must be an option key or a number, got null")
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = OptionAnswer(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumericAnswer(n)
		return nil
	}
	return fmt.Errorf("answer value must be an option key or a number, got %s", data)
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return json.Marshal(v.Score)
	}
	return json.Marshal(v.Key)
}

// String renders the answer the way reports display it.
func (v AnswerValue) String() string {
	if v.Numeric {
		return fmt.Sprintf("%g", v.Score)
	}
	return v.Key
}

// AnswerSet maps question ids to submitted values.
type AnswerSet map[string]AnswerValue
