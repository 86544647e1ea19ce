package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diabred/diabred/internal/chatbot"
)

type sessionView struct {
	ID       string            `json:"id"`
	Open     bool              `json:"open"`
	Messages []chatbot.Message `json:"messages"`
}

func viewSession(s *chatbot.Session) sessionView {
	return sessionView{ID: s.ID, Open: s.IsOpen(), Messages: s.Messages()}
}

func (s *server) quickQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": s.bot.QuickQuestions()})
}

func (s *server) createSession(c *gin.Context) {
	sess := chatbot.NewSession(s.bot, chatbot.WithMaxMessages(s.maxMessages))
	s.sessions.Put(sess)
	c.JSON(http.StatusCreated, viewSession(sess))
}

// session loads the :id session or writes a 404.
func (s *server) session(c *gin.Context) (*chatbot.Session, bool) {
	sess := s.sessions.Get(c.Param("id"))
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func (s *server) getSession(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viewSession(sess))
}

type messageRequest struct {
	Text string `json:"text"`
}

func (s *server) sendMessage(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	reply, err := sess.Send(req.Text)
	if errors.Is(err, chatbot.ErrEmptyMessage) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "empty_message"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.metrics.ObserveChatReply(reply.Intent)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type actionRequest struct {
	Action string `json:"action"`
}

func (s *server) pressAction(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := sess.Act(req.Action)
	if errors.Is(err, chatbot.ErrUnknownAction) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_action"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res, "open": sess.IsOpen()})
}

func (s *server) toggleSession(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": sess.Toggle()})
}

func (s *server) closeSession(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	sess.Close()
	c.JSON(http.StatusOK, gin.H{"open": false})
}
