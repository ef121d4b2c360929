package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/render"
)

// fakeConversation echoes a fixed reply for every submission.
type fakeConversation struct {
	mu         sync.Mutex
	reply      string
	starts     int
	submitted  []string
	transcript conversation.Transcript
	ctx        conversation.Context
}

func (f *fakeConversation) Start(ctx context.Context) bool {
	f.mu.Lock()
	f.starts++
	first := f.starts == 1
	f.mu.Unlock()
	if first {
		f.Submit(ctx, "start")
	}
	return first
}

func (f *fakeConversation) Submit(_ context.Context, text string) conversation.Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, text)
	reply := conversation.Bot(f.reply)
	f.transcript = append(f.transcript, conversation.User(text), reply)
	return reply
}

func (f *fakeConversation) Views() []render.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return render.BuildViews(f.transcript.Clone(), f.ctx)
}

func (f *fakeConversation) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.submitted...)
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func started(t *testing.T, reply string) (*model, *fakeConversation) {
	t.Helper()
	conv := &fakeConversation{reply: reply}
	m := newModel(context.Background(), conv)
	run(t, m, m.start())
	return m, conv
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestModel_StartRunsBootstrap(t *testing.T) {
	conv := &fakeConversation{reply: "What type of gadget are you looking for? (options: Laptop, Smartphone)"}
	m := newModel(context.Background(), conv)
	assert.Equal(t, 1, m.pending)
	assert.NotNil(t, m.Init())

	run(t, m, m.start())

	assert.Equal(t, []string{"start"}, conv.sent())
	assert.Equal(t, 0, m.pending)
	require.Len(t, m.views, 2)
	assert.Contains(t, m.viewport.View(), "[1] Laptop")
}

func TestModel_EnterSubmits(t *testing.T) {
	m, conv := started(t, "ok")

	m.input.SetValue("laptop")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.pending)
	assert.Empty(t, m.input.Value())

	run(t, m, cmd)
	assert.Equal(t, []string{"start", "laptop"}, conv.sent())
	assert.Equal(t, 0, m.pending)
	assert.Len(t, m.views, 4)
}

func TestModel_EnterIgnoresBlank(t *testing.T) {
	m, conv := started(t, "ok")

	m.input.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"start"}, conv.sent())
}

func TestModel_AltDigitPressesButton(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want []string
	}{
		{name: "first option", key: altKey('1'), want: []string{"start", "Laptop"}},
		{name: "second option", key: altKey('2'), want: []string{"start", "Smartphone"}},
		{name: "out of range", key: altKey('3'), want: []string{"start"}},
		{name: "zero is not a button", key: altKey('0'), want: []string{"start"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, conv := started(t, "What type of gadget are you looking for? (options: Laptop, Smartphone)")

			_, cmd := m.Update(tt.key)
			if len(tt.want) > 1 {
				run(t, m, cmd)
			}
			assert.Equal(t, tt.want, conv.sent())
		})
	}
}

func TestModel_PlainDigitIsTyped(t *testing.T) {
	m, conv := started(t, "(options: Laptop)")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	assert.Equal(t, "1", m.input.Value())
	assert.Equal(t, []string{"start"}, conv.sent())
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _ := started(t, "ok")
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_WindowResize(t *testing.T) {
	m, _ := started(t, "ok")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 37, m.viewport.Height)
}

func TestModel_ViewShowsSpinnerWhilePending(t *testing.T) {
	m := newModel(context.Background(), &fakeConversation{reply: "ok"})
	assert.Contains(t, m.View(), "waiting for the recommender")

	run(t, m, m.start())
	assert.NotContains(t, m.View(), "waiting for the recommender")
}

func manyOptions(n int) string {
	opts := make([]string, n)
	for i := range opts {
		opts[i] = fmt.Sprintf("P%d", i+1)
	}
	return "Which one? (options: " + strings.Join(opts, ", ") + ")"
}

func TestModel_TabPagesThroughButtons(t *testing.T) {
	tests := []struct {
		name string
		tabs int
		key  rune
		want string
	}{
		{name: "first page", tabs: 0, key: '9', want: "P9"},
		{name: "second page", tabs: 1, key: '1', want: "P10"},
		{name: "second page last", tabs: 1, key: '2', want: "P11"},
		{name: "wraps back", tabs: 2, key: '1', want: "P1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, conv := started(t, manyOptions(11))
			for i := 0; i < tt.tabs; i++ {
				m.Update(tea.KeyMsg{Type: tea.KeyTab})
			}

			_, cmd := m.Update(altKey(tt.key))
			run(t, m, cmd)
			assert.Equal(t, []string{"start", tt.want}, conv.sent())
		})
	}
}

func TestModel_PageBeyondButtonsPressesNothing(t *testing.T) {
	m, conv := started(t, manyOptions(11))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := m.Update(altKey('3'))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"start"}, conv.sent())
}

func TestModel_ReplyResetsPage(t *testing.T) {
	m, _ := started(t, manyOptions(11))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.page)

	m.input.SetValue("hello")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, m, cmd)
	assert.Equal(t, 0, m.page)
}
