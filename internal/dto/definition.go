package dto

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TreeDefinition is the file form of a decision tree.
// It uses "mapstructure" tags to match the YAML/JSON keys.
type TreeDefinition struct {
	Name        string           `json:"name" mapstructure:"name"`
	DisplayName *string          `json:"display_name,omitempty" mapstructure:"display_name"`
	Explanatory *string          `json:"explanatory,omitempty" mapstructure:"explanatory"`
	Tags        Tags             `json:"tags,omitempty" mapstructure:"tags"`
	Nodes       []NodeDefinition `json:"nodes" mapstructure:"nodes"`
}

// NodeDefinition declares one node. Exactly one of Question, Fixed and
// Outcome holds the node name; the others stay empty.
type NodeDefinition struct {
	Question string `json:"question,omitempty" mapstructure:"question"`
	Fixed    string `json:"fixed,omitempty" mapstructure:"fixed"`
	Outcome  string `json:"outcome,omitempty" mapstructure:"outcome"`

	// Next is the successor of a fixed next state question.
	Next string `json:"next,omitempty" mapstructure:"next"`
	Type string `json:"type,omitempty" mapstructure:"type"`

	DisplayName *string            `json:"display_name,omitempty" mapstructure:"display_name"`
	Explanatory *string            `json:"explanatory,omitempty" mapstructure:"explanatory"`
	Answers     []AnswerDefinition `json:"answers,omitempty" mapstructure:"answers"`
}

type AnswerDefinition struct {
	ID           string `json:"id" mapstructure:"id"`
	Next         string `json:"next,omitempty" mapstructure:"next"`
	AdvisoryCopy string `json:"advisory_copy,omitempty" mapstructure:"advisory_copy"`
}

// Tags is the free-form tag string. Files may also give it as a list.
type Tags string

var tagsType = reflect.TypeOf(Tags(""))

// TagsHook joins a YAML list of tags into the comma separated form.
func TagsHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != tagsType || from.Kind() != reflect.Slice {
			return data, nil
		}
		items, ok := data.([]any)
		if !ok {
			return data, nil
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", "), nil
	}
}
