// Package chatbot implements the DIABRED FAQ assistant: an ordered list of
// keyword rules matched against the user's question, first match wins.
package chatbot

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// Action is a button attached to a bot message.
type Action struct {
	Label  string `yaml:"label" json:"label"`
	Action string `yaml:"action" json:"action"`
}

// Response is the canned answer for a rule.
type Response struct {
	Text    string   `yaml:"text" json:"text"`
	Actions []Action `yaml:"actions" json:"actions,omitempty"`
}

// Rule matches when every group in All has at least one keyword contained
// in the normalized question.
type Rule struct {
	Intent   string     `yaml:"intent"`
	All      [][]string `yaml:"all"`
	Response `yaml:",inline"`
}

// ActionSpec describes what an action button does: scroll to a page
// section, or post a follow-up bot message.
type ActionSpec struct {
	Section string `yaml:"section"`
	Message string `yaml:"message"`
}

// QuickQuestion is a shortcut button under the chat input.
type QuickQuestion struct {
	Label    string `yaml:"label" json:"label"`
	Question string `yaml:"question" json:"question"`
}

// KnowledgeBase is the full set of canned content.
type KnowledgeBase struct {
	Welcome        string                `yaml:"welcome"`
	QuickQuestions []QuickQuestion       `yaml:"quick_questions"`
	Rules          []Rule                `yaml:"rules"`
	Fallback       Response              `yaml:"fallback"`
	Actions        map[string]ActionSpec `yaml:"actions"`
}

// DefaultKnowledgeBase returns the knowledge base compiled into the binary.
func DefaultKnowledgeBase() (*KnowledgeBase, error) {
	return ParseKnowledgeBase(defaultKnowledge)
}

// LoadKnowledgeBase reads a knowledge base from path. An empty path
// returns the built-in one.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	if path == "" {
		return DefaultKnowledgeBase()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	return ParseKnowledgeBase(data)
}

// ParseKnowledgeBase decodes and validates YAML knowledge base content.
func ParseKnowledgeBase(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}
	if err := kb.validate(); err != nil {
		return nil, err
	}
	for i := range kb.Rules {
		for j, group := range kb.Rules[i].All {
			for k, kw := range group {
				kb.Rules[i].All[j][k] = normalize(kw)
			}
		}
	}
	return &kb, nil
}

func (kb *KnowledgeBase) validate() error {
	if kb.Fallback.Text == "" {
		return fmt.Errorf("knowledge base: fallback text is required")
	}
	for _, r := range kb.Rules {
		if r.Intent == "" {
			return fmt.Errorf("knowledge base: rule without intent")
		}
		if len(r.All) == 0 {
			return fmt.Errorf("knowledge base: rule %q has no keywords", r.Intent)
		}
		for _, group := range r.All {
			if len(group) == 0 {
				return fmt.Errorf("knowledge base: rule %q has an empty keyword group", r.Intent)
			}
		}
		if r.Text == "" {
			return fmt.Errorf("knowledge base: rule %q has no text", r.Intent)
		}
		if err := kb.checkActions(r.Intent, r.Actions); err != nil {
			return err
		}
	}
	return kb.checkActions("fallback", kb.Fallback.Actions)
}

func (kb *KnowledgeBase) checkActions(owner string, actions []Action) error {
	for _, a := range actions {
		if _, ok := kb.Actions[a.Action]; !ok {
			return fmt.Errorf("knowledge base: %s references unknown action %q", owner, a.Action)
		}
	}
	return nil
}
