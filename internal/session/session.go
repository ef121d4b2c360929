// Package session runs conversations with the chat service and keeps their
// state in memory.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lojasmm/gadgetchat/internal/chatapi"
	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/render"
)

const (
	// StartMessage is submitted once when a session begins.
	StartMessage = "start"

	// ErrorReply replaces the bot reply when the chat endpoint fails.
	ErrorReply = "Sorry, there was an error communicating with the server."
)

// Chatter sends one turn to the chat service.
type Chatter interface {
	Chat(ctx context.Context, req chatapi.Request) (*chatapi.Response, error)
}

// Session is one conversation: its transcript and the latest context
// returned by the chat service.
//
// Submissions are not serialized. Each one appends its user turn right
// away and its bot turn when the call returns, and the last reply to land
// decides the context. The mutex only protects the slices and map, it is
// never held during the call.
type Session struct {
	chat Chatter
	log  logrus.FieldLogger

	started atomic.Bool

	mu         sync.Mutex
	transcript conversation.Transcript
	context    conversation.Context
}

// New returns an empty session. log may be nil.
func New(chat Chatter, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		chat:    chat,
		log:     log,
		context: conversation.Context{},
	}
}

// Start submits the bootstrap message. It fires at most once per session;
// later calls return false without doing anything.
func (s *Session) Start(ctx context.Context) bool {
	if !s.started.CompareAndSwap(false, true) {
		return false
	}
	s.Submit(ctx, StartMessage)
	return true
}

// Started reports whether Start has fired.
func (s *Session) Started() bool { return s.started.Load() }

// Submit sends text as the next user turn and returns the bot turn it
// appended. Failures never escape: they become a fixed apology and the
// context is left as it was.
func (s *Session) Submit(ctx context.Context, text string) conversation.Utterance {
	s.mu.Lock()
	s.transcript = append(s.transcript, conversation.User(text))
	current := s.context.Clone()
	s.mu.Unlock()

	resp, err := s.chat.Chat(ctx, chatapi.Request{Message: text, Context: current})
	if err == nil && resp == nil {
		err = errors.New("chat returned no response")
	}
	if err != nil {
		fields := logrus.Fields{"message": text}
		var te *chatapi.TransportError
		if errors.As(err, &te) {
			fields["kind"] = te.Kind
		}
		s.log.WithFields(fields).WithError(err).Warn("session: chat request failed")

		reply := conversation.Bot(ErrorReply)
		s.mu.Lock()
		s.transcript = append(s.transcript, reply)
		s.mu.Unlock()
		return reply
	}

	next := resp.Context
	if next == nil {
		next = conversation.Context{}
	}
	reply := conversation.Bot(resp.Response)

	s.mu.Lock()
	prev := s.context
	s.transcript = append(s.transcript, reply)
	s.context = next
	s.mu.Unlock()

	s.logContextChange(prev, next)
	return reply
}

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() conversation.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Clone()
}

// Context returns a copy of the latest context.
func (s *Session) Context() conversation.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context.Clone()
}

// Views renders the transcript against the latest context.
func (s *Session) Views() []render.View {
	s.mu.Lock()
	transcript := s.transcript.Clone()
	ctx := s.context.Clone()
	s.mu.Unlock()
	return render.BuildViews(transcript, ctx)
}

func (s *Session) logContextChange(prev, next conversation.Context) {
	if !isDebug(s.log) {
		return
	}
	patch, err := conversation.Diff(prev, next)
	if err != nil {
		s.log.WithError(err).Debug("session: context diff failed")
		return
	}
	s.log.WithField("patch", string(patch)).Debug("session: context replaced")
}

func isDebug(log logrus.FieldLogger) bool {
	switch l := log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return false
	}
}
