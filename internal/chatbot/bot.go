package chatbot

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrUnknownAction is returned for action names the knowledge base does not define.
	ErrUnknownAction = errors.New("chatbot: unknown action")
	// ErrEmptyMessage is returned when the user sends only whitespace.
	ErrEmptyMessage = errors.New("chatbot: empty message")
)

// FallbackIntent names replies produced by the fallback response.
const FallbackIntent = "fallback"

// Reply is the bot's answer to one question.
type Reply struct {
	Intent string `json:"intent"`
	Response
}

// ActionResult is the outcome of pressing an action button. Navigation
// actions set Section and close the chat window; message actions set
// Message.
type ActionResult struct {
	Action    string `json:"action"`
	Section   string `json:"section,omitempty"`
	Message   string `json:"message,omitempty"`
	CloseChat bool   `json:"closeChat"`
}

// Bot answers questions from a knowledge base. It holds no per-user state
// and is safe for concurrent use.
type Bot struct {
	kb *KnowledgeBase
}

// New creates a Bot over kb.
func New(kb *KnowledgeBase) *Bot {
	return &Bot{kb: kb}
}

// Welcome returns the greeting that opens every conversation.
func (b *Bot) Welcome() string {
	return b.kb.Welcome
}

// QuickQuestions returns the shortcut questions shown under the input.
func (b *Bot) QuickQuestions() []QuickQuestion {
	return b.kb.QuickQuestions
}

// Reply matches question against the rules in order and returns the first
// matching response, or the fallback.
func (b *Bot) Reply(question string) Reply {
	text := normalize(question)
	for _, r := range b.kb.Rules {
		if r.matches(text) {
			return Reply{Intent: r.Intent, Response: r.Response}
		}
	}
	return Reply{Intent: FallbackIntent, Response: b.kb.Fallback}
}

// HandleAction resolves an action button press.
func (b *Bot) HandleAction(name string) (ActionResult, error) {
	spec, ok := b.kb.Actions[name]
	if !ok {
		return ActionResult{}, ErrUnknownAction
	}
	if spec.Section != "" {
		return ActionResult{Action: name, Section: spec.Section, CloseChat: true}, nil
	}
	return ActionResult{Action: name, Message: spec.Message}, nil
}

func (r Rule) matches(text string) bool {
	for _, group := range r.All {
		if !containsAny(text, group) {
			return false
		}
	}
	return true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	urlPattern     = regexp.MustCompile(`(https?://[^\s]+)`)
	sectionPattern = regexp.MustCompile(`sección "([^"]+)"`)
)

// FormatMessage turns URLs and `sección "X"` mentions in bot text into links.
func FormatMessage(text string) string {
	text = urlPattern.ReplaceAllString(text, `<a href="$1" target="_blank">$1</a>`)
	return sectionPattern.ReplaceAllString(text, `sección "<a href="#$1" data-section="$1">$1</a>"`)
}
