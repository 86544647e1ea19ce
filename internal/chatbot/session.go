package chatbot

import (
	"html"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Message is one entry in a conversation.
type Message struct {
	Type      Sender    `json:"type"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	Time      string    `json:"time"` // HH:MM
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent,omitempty"`
	Actions   []Action  `json:"actions,omitempty"`
}

// DefaultMaxMessages bounds a session transcript when no limit is given.
const DefaultMaxMessages = 200

// Session is one visitor's conversation with the bot. Only the most recent
// maxMessages messages are kept.
type Session struct {
	ID string

	mu          sync.Mutex
	bot         *Bot
	now         func() time.Time
	open        bool
	maxMessages int
	messages    []Message
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithMaxMessages caps the transcript length. Values <= 0 keep
// DefaultMaxMessages.
func WithMaxMessages(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.maxMessages = n
		}
	}
}

// NewSession starts a conversation with the welcome message already posted.
func NewSession(bot *Bot, opts ...SessionOption) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		bot:         bot,
		now:         time.Now,
		maxMessages: DefaultMaxMessages,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.record(s.newMessage(SenderBot, bot.Welcome(), "", nil))
	return s
}

// Send posts the user's text and the bot's reply. Blank input is rejected
// with ErrEmptyMessage.
func (s *Session) Send(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	reply := s.bot.Reply(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	question := s.newMessage(SenderUser, text, "", nil)
	msg := s.newMessage(SenderBot, reply.Text, reply.Intent, reply.Actions)
	s.record(question, msg)
	return msg, nil
}

// Act presses an action button. Navigation actions close the chat; message
// actions post a bot message.
func (s *Session) Act(name string) (ActionResult, error) {
	res, err := s.bot.HandleAction(name)
	if err != nil {
		return ActionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.CloseChat {
		s.open = false
	}
	if res.Message != "" {
		s.record(s.newMessage(SenderBot, res.Message, "", nil))
	}
	return res, nil
}

// Toggle flips the chat window open or closed and returns the new state.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// Close closes the chat window.
func (s *Session) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

// IsOpen reports whether the chat window is open.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// record adds msgs and drops the oldest messages beyond the cap. Callers
// hold s.mu except during construction.
func (s *Session) record(msgs ...Message) {
	s.messages = append(s.messages, msgs...)
	if over := len(s.messages) - s.maxMessages; over > 0 {
		s.messages = append(s.messages[:0:0], s.messages[over:]...)
	}
}

func (s *Session) newMessage(from Sender, text, intent string, actions []Action) Message {
	ts := s.now()
	markup := html.EscapeString(text)
	if from == SenderBot {
		markup = FormatMessage(text)
	}
	return Message{
		Type:      from,
		Text:      text,
		HTML:      markup,
		Time:      FormatTime(ts),
		Timestamp: ts,
		Intent:    intent,
		Actions:   actions,
	}
}

// FormatTime renders a timestamp as zero-padded HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
