// Package tui is a terminal front-end for one conversation, built on
// bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lojasmm/gadgetchat/internal/affordance"
	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	promptSymbol  = "› "
	placeholder   = "Type your message... Esc to exit"
	// footerHeight covers the status line, the prompt and the help line.
	footerHeight = 3
)

// Conversation is the session the terminal drives.
type Conversation interface {
	Start(ctx context.Context) bool
	Submit(ctx context.Context, text string) conversation.Utterance
	Views() []render.View
}

type startedMsg struct{}

type replyMsg struct {
	reply conversation.Utterance
}

type model struct {
	ctx  context.Context
	conv Conversation

	styles   styles
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	views   []render.View
	page    int
	pending int
	width   int
}

// Run shows the conversation until the user quits or ctx is done.
func Run(ctx context.Context, conv Conversation, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(newModel(ctx, conv), opts...).Run()
	return err
}

func newModel(ctx context.Context, conv Conversation) *model {
	st := defaultStyles()

	input := textinput.New()
	input.Prompt = promptSymbol
	input.Placeholder = placeholder
	input.PromptStyle = st.button
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.status

	m := &model{
		ctx:      ctx,
		conv:     conv,
		styles:   st,
		viewport: viewport.New(defaultWidth, defaultHeight-footerHeight),
		input:    input,
		spinner:  sp,
		width:    defaultWidth,
		// the bootstrap turn is in flight from Init on
		pending: 1,
	}
	m.input.Width = defaultWidth - lipgloss.Width(promptSymbol) - 1
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.start())
}

func (m *model) start() tea.Cmd {
	return func() tea.Msg {
		m.conv.Start(m.ctx)
		return startedMsg{}
	}
}

func (m *model) submit(text string) tea.Cmd {
	m.pending++
	return func() tea.Msg {
		return replyMsg{reply: m.conv.Submit(m.ctx, text)}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight, 1)
		m.input.Width = max(msg.Width-lipgloss.Width(promptSymbol)-1, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startedMsg:
		m.settle()
		return m, nil

	case replyMsg:
		m.settle()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.input.Reset()
		return m, m.submit(text)
	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil
	case "tab":
		m.nextPage()
		return m, nil
	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	if n, ok := buttonKey(msg); ok {
		return m, m.press(n)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// lastButtons returns the buttons of the most recent bot message.
func (m *model) lastButtons() []affordance.Button {
	last := render.LastBot(m.views)
	if last < 0 {
		return nil
	}
	return m.views[last].Buttons()
}

// press activates the n-th button (1-based) on the current page of the
// most recent bot message.
func (m *model) press(n int) tea.Cmd {
	buttons := m.lastButtons()
	lo, hi := pageBounds(len(buttons), m.page)
	if lo+n > hi {
		return nil
	}
	return m.submit(buttons[lo+n-1].Utterance)
}

// nextPage shows the next page of buttons, wrapping around.
func (m *model) nextPage() {
	pages := buttonPages(len(m.lastButtons()))
	if pages < 2 {
		return
	}
	m.page = (m.page + 1) % pages
	m.refresh()
}

// buttonKey maps alt+1 through alt+9 to 1..9.
func buttonKey(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (m *model) settle() {
	if m.pending > 0 {
		m.pending--
	}
	m.views = m.conv.Views()
	m.page = 0
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(renderTranscript(m.views, m.styles, m.width, m.page))
	m.viewport.GotoBottom()
}

func (m *model) View() string {
	status := ""
	if m.pending > 0 {
		status = m.spinner.View() + m.styles.status.Render(" waiting for the recommender")
	}
	help := m.styles.muted.Render("enter send • alt+1..9 choose • tab more buttons • pgup/pgdown scroll • esc quit")
	return m.viewport.View() + "\n" + status + "\n" + m.input.View() + "\n" + help
}
