package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	restExtendStep = 15 * time.Second
	restBarWidth   = 40
)

type restKeyMap struct {
	Toggle key.Binding
	Extend key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func defaultRestKeys() restKeyMap {
	return restKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "pause")),
		Extend: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "15s more")),
		Skip:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "skip")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// restTimerModel is a countdown between sets.
type restTimerModel struct {
	total   time.Duration
	timer   timer.Model
	bar     progress.Model
	keys    restKeyMap
	done    bool
	skipped bool
}

func newRestTimerModel(d time.Duration) restTimerModel {
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorPurple)),
		progress.WithoutPercentage(),
	)
	bar.Width = restBarWidth

	return restTimerModel{
		total: d,
		timer: timer.NewWithInterval(d, time.Second),
		bar:   bar,
		keys:  defaultRestKeys(),
	}
}

func (m restTimerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m restTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Skip):
			m.skipped = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.timer.Toggle()
		case key.Matches(msg, m.keys.Extend):
			m.timer.Timeout += restExtendStep
			m.total += restExtendStep
			return m, nil
		}
	}
	return m, nil
}

// elapsed is the fraction of the rest already taken.
func (m restTimerModel) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	return 1 - float64(m.timer.Timeout)/float64(m.total)
}

func (m restTimerModel) View() string {
	if m.done || m.skipped {
		return ""
	}

	var b strings.Builder
	status := formatter.StyleHeader.Render("REST")
	if !m.timer.Running() {
		status += formatter.Dim(" (paused)")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", status, formatter.Bold(m.timer.View())))
	b.WriteString(m.bar.ViewAs(m.elapsed()))
	b.WriteString("\n")

	help := []string{}
	for _, k := range []key.Binding{m.keys.Toggle, m.keys.Extend, m.keys.Skip, m.keys.Quit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")))
	b.WriteString("\n")
	return b.String()
}
