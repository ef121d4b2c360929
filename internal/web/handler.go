// Package web serves the conversation to browsers: an HTML page driven by
// plain form posts and a small JSON API over the same sessions.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/product"
	"github.com/lojasmm/gadgetchat/internal/session"
)

//go:embed page.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "page.html"))

const maxBodyBytes = 64 << 10

type pageData struct {
	Heading string
	Views   []viewData
}

type messageRequest struct {
	Message string `json:"message"`
}

type transcriptResponse struct {
	SessionID string                  `json:"session_id"`
	Reply     *conversation.Utterance `json:"reply,omitempty"`
	Views     []viewData              `json:"views"`
}

type Handler struct {
	sessions *session.Manager
	log      logrus.FieldLogger
}

func NewHandler(sessions *session.Manager, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{sessions: sessions, log: log}
}

// HandleIndex renders the transcript. The first visit creates the session
// and runs its bootstrap turn.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	_, s := h.session(w, r)

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{
		Heading: product.Heading,
		Views:   toViewData(s.Views()),
	}); err != nil {
		h.log.WithError(err).Error("web: render page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// HandleSend submits the form field "message" and redirects back to the
// page. Blank messages are ignored.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	_, s := h.session(w, r)

	if text := r.FormValue("message"); strings.TrimSpace(text) != "" {
		s.Submit(detach(r), text)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleReset ends the cookie's session. The next visit starts over.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if id, err := GetSessionCookie(r); err == nil && id != "" {
		h.sessions.End(id)
		h.log.WithField("session", id).Info("web: session reset")
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleTranscript returns the session's views as JSON.
func (h *Handler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	id, s := h.session(w, r)
	h.writeJSON(w, http.StatusOK, transcriptResponse{
		SessionID: id,
		Views:     toViewData(s.Views()),
	})
}

// HandleMessage submits {"message": "..."} and returns the bot reply with
// the updated views.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "could not read body")
		return
	}
	var req messageRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	id, s := h.session(w, r)
	reply := s.Submit(detach(r), req.Message)
	h.writeJSON(w, http.StatusOK, transcriptResponse{
		SessionID: id,
		Reply:     &reply,
		Views:     toViewData(s.Views()),
	})
}

// session resolves the cookie's session, creating a fresh one under a new
// id when the cookie is missing or refers to a session that is gone, and
// makes sure its bootstrap turn has run.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, *session.Session) {
	var (
		s  *session.Session
		ok bool
	)
	id, err := GetSessionCookie(r)
	if err == nil && id != "" {
		s, ok = h.sessions.Get(id)
	}
	if !ok {
		id = uuid.NewString()
		s, _ = h.sessions.GetOrCreate(id)
		SetSessionCookie(w, id)
		h.log.WithField("session", id).Info("web: session created")
	}
	w.Header().Set("X-Session-Id", id)

	s.Start(detach(r))
	return id, s
}

// detach keeps request values but drops cancellation: a chat call, once
// issued, runs to completion and lands in the transcript.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := sonic.Marshal(v)
	if err != nil {
		h.log.WithError(err).Error("web: encode response failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
