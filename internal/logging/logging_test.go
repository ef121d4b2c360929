package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		want    logrus.Level
		wantErr bool
	}{
		{name: "info text", level: "info", format: "text", want: logrus.InfoLevel},
		{name: "debug json", level: "debug", format: "json", want: logrus.DebugLevel},
		{name: "empty format is text", level: "warn", format: "", want: logrus.WarnLevel},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.format, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	require.NoError(t, err)

	log.WithField("session", "abc").Info("hello")
	assert.Contains(t, buf.String(), `"session":"abc"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestRequests(t *testing.T) {
	log, hook := test.NewNullLogger()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Requests(log))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "http: request", entry.Message)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/teapot", entry.Data["path"])
	assert.NotEmpty(t, entry.Data["request_id"])
}
