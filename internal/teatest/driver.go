// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and draining
// returned Cmds on the test goroutine's schedule. Cmds that wait on a clock,
// such as the tea.Tick behind bubbles/timer, are skipped after a short
// timeout; tests advance time by sending the tick messages themselves.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds from clock-driven ones. Timer ticks
// fire after a full interval (one second for the rest timer).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The bubbletea
	// runtime normally intercepts it, so models never observe it.
	Quitting bool
}

// New creates a Driver for the given model.
// Call Start() to process the model's Init() command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// Start executes the model's Init() command and drains the resulting messages.
func (d *Driver) Start() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Repeat sends msg n times, stopping early once the model quits.
func (d *Driver) Repeat(msg tea.Msg, n int) {
	d.T.Helper()
	for i := 0; i < n && !d.Quitting; i++ {
		d.Send(msg)
	}
}

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressSpace sends the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, subCmd := range batch {
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		return
	}

	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine and returns nil if it
// does not complete within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
