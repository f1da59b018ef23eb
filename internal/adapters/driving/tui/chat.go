package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
)

// turn is one question/answer pair in the transcript.
type turn struct {
	query  string
	answer string
}

// answerMsg carries a completed answer back into the update loop.
type answerMsg struct {
	query  string
	answer string
}

// Chat is the bubbletea model for the interactive guidance session.
type Chat struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	turns   []turn
	tone    domain.Tone
	mode    domain.AskMode
	waiting bool

	width  int
	height int
	ready  bool
}

// tonesInOrder is the Ctrl+T cycle order.
var tonesInOrder = []domain.Tone{
	domain.ToneModern,
	domain.ToneSpiritual,
	domain.ToneScholarly,
	domain.ToneDevotional,
}

// NewChat creates the chat model.
func NewChat(ports *Ports) *Chat {
	ti := textinput.New()
	ti.Placeholder = "Ask Krishna for guidance..."
	ti.Focus()
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &Chat{
		ports:   ports,
		ctx:     context.Background(),
		styles:  DefaultStyles(),
		input:   ti,
		spinner: sp,
		tone:    domain.DefaultTone,
		mode:    domain.DefaultMode,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for ask calls.
func (c *Chat) WithContext(ctx context.Context) *Chat {
	c.ctx = ctx
	return c
}

// Init implements tea.Model.
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.resize()
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)

	case answerMsg:
		c.waiting = false
		c.turns = append(c.turns, turn{query: msg.query, answer: msg.answer})
		c.refreshTranscript()
		c.viewport.GotoBottom()
		return c, nil

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

func (c *Chat) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return c, tea.Quit

	case tea.KeyCtrlT:
		c.tone = nextTone(c.tone)
		return c, nil

	case tea.KeyCtrlU:
		if c.mode == domain.ModeUniversal {
			c.mode = domain.ModeGita
		} else {
			c.mode = domain.ModeUniversal
		}
		return c, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(c.input.Value())
		if query == "" || c.waiting {
			return c, nil
		}
		c.input.SetValue("")
		c.waiting = true
		return c, tea.Batch(c.spinner.Tick, c.askCmd(query))
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// askCmd runs the guidance pipeline off the update loop and records the
// turn in the journey.
func (c *Chat) askCmd(query string) tea.Cmd {
	tone, mode := c.tone, c.mode
	return func() tea.Msg {
		answer := c.ports.Ask.Ask(c.ctx, query, tone, domain.DefaultLanguage, mode)

		if c.ports.Journey != nil {
			// Best effort; the chat must not fail on journey errors.
			_ = c.ports.Journey.Record(c.ctx, driven.JourneyEntry{
				Timestamp: time.Now().UTC(),
				Query:     query,
				Response:  answer,
				Tone:      tone.String(),
				Language:  domain.DefaultLanguage.String(),
				Mode:      mode.String(),
			})
		}

		return answerMsg{query: query, answer: answer}
	}
}

// View implements tea.Model.
func (c *Chat) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render("Drishti - Bhagavad Gita Guidance"))
	b.WriteString("\n")
	b.WriteString(c.styles.Status.Render(c.statusLine()))
	b.WriteString("\n\n")

	if c.ready {
		b.WriteString(c.viewport.View())
		b.WriteString("\n")
	}

	if c.waiting {
		b.WriteString(c.spinner.View())
		b.WriteString(" seeking guidance...")
	} else {
		b.WriteString(c.input.View())
	}
	b.WriteString("\n")
	b.WriteString(c.styles.Help.Render("enter send • ctrl+t tone • ctrl+u universal • esc quit"))

	return b.String()
}

func (c *Chat) statusLine() string {
	mode := "gita"
	if c.mode == domain.ModeUniversal {
		mode = "universal"
	}
	return "tone: " + c.tone.String() + "  mode: " + mode
}

// resize recomputes the viewport dimensions after a window size change.
// Five lines are reserved for the header, input and help rows.
func (c *Chat) resize() {
	height := c.height - 6
	if height < 3 {
		height = 3
	}
	if !c.ready {
		c.viewport = viewport.New(c.width, height)
		c.ready = true
	} else {
		c.viewport.Width = c.width
		c.viewport.Height = height
	}
	c.input.Width = c.width - 4
	c.refreshTranscript()
	c.viewport.GotoBottom()
}

// refreshTranscript re-renders the conversation into the viewport.
func (c *Chat) refreshTranscript() {
	if !c.ready {
		return
	}

	wrap := lipgloss.NewStyle().Width(c.viewport.Width - 2)

	var b strings.Builder
	for _, t := range c.turns {
		b.WriteString(c.styles.Seeker.Render("You: "))
		b.WriteString(wrap.Render(t.query))
		b.WriteString("\n\n")
		b.WriteString(c.styles.Guidance.Render(wrap.Render(t.answer)))
		b.WriteString("\n\n")
	}
	c.viewport.SetContent(b.String())
}

func nextTone(t domain.Tone) domain.Tone {
	for i, tone := range tonesInOrder {
		if tone == t {
			return tonesInOrder[(i+1)%len(tonesInOrder)]
		}
	}
	return domain.DefaultTone
}
