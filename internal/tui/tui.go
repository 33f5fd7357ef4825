// Package tui is the interactive terminal trainer built on Bubble Tea.
package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/poker"
	"github.com/lox/preflop-trainer/preflop"
	"github.com/lox/preflop-trainer/trainer"
)

type screen int

const (
	screenIntro screen = iota
	screenAction
	screenSizing
	screenFeedback
)

// IntroStore remembers whether the rules introduction has been dismissed.
type IntroStore interface {
	IntroSeen() bool
	MarkIntroSeen() error
}

// Model is the Bubble Tea model for a training session
type Model struct {
	session *trainer.Session
	intro   IntroStore
	logger  *log.Logger

	keys keyMap
	help help.Model

	screen  screen
	cursor  int // Selected sizing option
	verdict *trainer.Verdict
	err     error

	width    int
	quitting bool
}

// New returns a model for session. The introduction is shown unless intro says it
// was seen before. A nil intro skips it.
func New(session *trainer.Session, intro IntroStore, logger *log.Logger) *Model {
	m := &Model{
		session: session,
		intro:   intro,
		logger:  logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	if intro == nil || intro.IntroSeen() {
		m.deal()
	} else {
		m.setScreen(screenIntro)
	}
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Restart):
			m.session.Restart()
			m.deal()
		default:
			m.handleKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch m.screen {
	case screenIntro:
		if key.Matches(msg, m.keys.Confirm) {
			if err := m.intro.MarkIntroSeen(); err != nil {
				m.logger.Error("Failed to save intro flag", "error", err)
			}
			m.deal()
		}

	case screenAction:
		switch {
		case key.Matches(msg, m.keys.Fold):
			m.act(preflop.Fold)
		case key.Matches(msg, m.keys.Call):
			m.act(preflop.Call)
		case key.Matches(msg, m.keys.Raise):
			m.act(preflop.Raise)
		}

	case screenSizing:
		options := m.session.Round().Options
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.cursor = min(m.cursor+1, len(options)-1)
		case key.Matches(msg, m.keys.Pick):
			if i, err := strconv.Atoi(msg.String()); err == nil && i >= 1 && i <= len(options) {
				m.cursor = i - 1
				m.size(options[m.cursor].Amount)
			}
		case key.Matches(msg, m.keys.Confirm):
			m.size(options[m.cursor].Amount)
		}

	case screenFeedback:
		if key.Matches(msg, m.keys.Confirm) {
			m.deal()
		}
	}
}

func (m *Model) deal() {
	m.verdict = nil
	if _, err := m.session.Deal(); err != nil {
		m.logger.Error("Failed to deal round", "error", err)
		m.err = err
		return
	}
	m.err = nil
	m.setScreen(screenAction)
}

func (m *Model) act(a preflop.Action) {
	v, err := m.session.Act(a)
	if err != nil {
		m.logger.Error("Action rejected", "action", a, "error", err)
		m.err = err
		return
	}
	if v == nil {
		m.cursor = initialCursor(m.session.Round().Options)
		m.setScreen(screenSizing)
		return
	}
	m.verdict = v
	m.setScreen(screenFeedback)
}

func (m *Model) size(amount int) {
	v, err := m.session.Size(amount)
	if err != nil {
		m.logger.Error("Sizing rejected", "amount", amount, "error", err)
		m.err = err
		return
	}
	m.verdict = v
	m.setScreen(screenFeedback)
}

func (m *Model) setScreen(s screen) {
	m.screen = s
	freeCheck := false
	if r := m.session.Round(); r != nil {
		freeCheck = r.IsFreeCheck
	}
	m.keys.forScreen(s, freeCheck)
}

// initialCursor starts on the Standard option.
func initialCursor(options []preflop.SizingOption) int {
	return max(slices.IndexFunc(options, func(o preflop.SizingOption) bool { return o.Standard }), 0)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(" ♠ ♥ Pre-flop Trainer ♦ ♣ "))
	sb.WriteString("  ")
	sb.WriteString(m.renderScore())
	sb.WriteString("\n\n")

	switch m.screen {
	case screenIntro:
		sb.WriteString(PanelStyle.Render(m.introText()))
	default:
		if m.session.Round() != nil {
			sb.WriteString(PanelStyle.Render(m.renderRound()))
			sb.WriteString("\n")
			sb.WriteString(m.renderPrompt())
		}
	}

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.err.Error()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

const introText = `Welcome to the pre-flop trainer.

Each round deals you two cards, a seat at a six-handed table and the
action so far. Choose what a solid player does: fold, call or raise.
If you raise, pick the size as well.

A right action with the wrong size scores as partial credit but
breaks your streak. Blinds are %d/%d.`

func (m *Model) introText() string {
	blinds := m.session.Dealer().Catalog().Blinds
	return fmt.Sprintf(introText, blinds.Small, blinds.Big)
}

func (m *Model) renderScore() string {
	score := m.session.Score()
	line := fmt.Sprintf("Score %d/%d", score.Correct, score.Total)
	if score.Total > 0 {
		line += fmt.Sprintf(" (%.0f%%)", 100*score.Accuracy())
	}
	line += fmt.Sprintf("  Streak %d  Best %d", score.Streak, score.BestStreak)
	if score.SizingTotal > 0 {
		line += fmt.Sprintf("  Sizing %d/%d", score.SizingCorrect, score.SizingTotal)
	}
	return InfoStyle.Render(line)
}

func (m *Model) renderRound() string {
	r := m.session.Round()
	var sb strings.Builder

	sb.WriteString(renderCard(r.Hand.A))
	sb.WriteString(" ")
	sb.WriteString(renderCard(r.Hand.B))
	sb.WriteString("  ")
	sb.WriteString(HandInfoStyle.Render(r.HandName()))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Position: %s\n", r.Position)
	fmt.Fprintf(&sb, "Action:   %s\n", r.Scenario.Name)
	fmt.Fprintf(&sb, "Pot:      %d\n", r.Scenario.Pot)
	if r.IsFreeCheck {
		sb.WriteString("To call:  0 (free check)")
	} else {
		fmt.Fprintf(&sb, "To call:  %d", r.ToCall)
	}
	return sb.String()
}

func (m *Model) renderPrompt() string {
	r := m.session.Round()
	switch m.screen {
	case screenAction:
		labels := make([]string, 0, 3)
		for _, a := range r.Actions() {
			label := a.Label(r.IsFreeCheck)
			labels = append(labels, fmt.Sprintf("[%c]%s", label[0]+'a'-'A', label[1:]))
		}
		return ActionsStyle.Render(strings.Join(labels, "  "))

	case screenSizing:
		parts := make([]string, len(r.Options))
		for i, opt := range r.Options {
			text := fmt.Sprintf(" %d. %s %d ", i+1, opt.Label, opt.Amount)
			if i == m.cursor {
				parts[i] = SelectedStyle.Render(text)
			} else {
				parts[i] = text
			}
		}
		return "Raise to:\n" + lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	case screenFeedback:
		return m.renderVerdict()
	}
	return ""
}

func (m *Model) renderVerdict() string {
	v := m.verdict
	if v == nil {
		return ""
	}

	var title string
	switch v.Tier {
	case trainer.Correct:
		title = SuccessStyle.Render("✓ Correct")
	case trainer.Partial:
		title = WarningStyle.Render("~ Partial")
	default:
		title = ErrorStyle.Render("✗ Incorrect")
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(InfoStyle.Render(fmt.Sprintf("  (%.1fs)", v.Elapsed.Seconds())))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Width(wrapWidth(m.width)).Render(v.Explanation))
	if v.SizingExplanation != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Width(wrapWidth(m.width)).Render(v.SizingExplanation))
	}
	return sb.String()
}

func wrapWidth(width int) int {
	if width <= 0 || width > 80 {
		return 80
	}
	return width
}

func renderCard(c poker.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.Pretty())
	}
	return BlackCardStyle.Render(c.Pretty())
}
