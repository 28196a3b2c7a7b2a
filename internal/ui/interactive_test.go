package ui

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	return &Theme{Colors: DefaultColors}
}

// newTestProgram creates a tea.Program that needs no TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram runs p in a goroutine and returns a channel closed on exit.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	time.Sleep(10 * time.Millisecond)
	return done
}

func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestInteractiveProgressBar_Lifecycle(t *testing.T) {
	m := newProgressModel(testTheme(), "render app.js", 3)
	p := newTestProgram(m)
	b := &interactiveProgressBar{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	b.SetTitle("render .env")
	b.Increment(1)
	b.Increment(0)
	b.Done()
	b.Done()

	waitForProgram(t, done)
}

func TestProgressModel_Update(t *testing.T) {
	var m tea.Model = newProgressModel(testTheme(), "start", 2)

	m, _ = m.Update(progressIncrMsg(1))
	m, _ = m.Update(progressTitleMsg("copy public"))
	pm := m.(progressModel)
	if pm.current != 1 || pm.title != "copy public" {
		t.Errorf("current=%d title=%q", pm.current, pm.title)
	}
	if !strings.Contains(pm.View(), "[1/2] copy public") {
		t.Errorf("View() = %q", pm.View())
	}

	m, _ = m.Update(progressIncrMsg(5))
	if got := m.(progressModel).current; got != 2 {
		t.Errorf("current = %d, want clamp to 2", got)
	}

	m, cmd := m.Update(progressDoneMsg{})
	if cmd == nil {
		t.Error("done should quit the program")
	}
	if m.View() != "" {
		t.Errorf("View after done = %q", m.View())
	}
}

func TestProgressModel_Update_FrameMsg(t *testing.T) {
	m := newProgressModel(testTheme(), "x", 1)
	updated, _ := m.Update(progress.FrameMsg{})
	if _, ok := updated.(progressModel); !ok {
		t.Fatalf("Update returned %T", updated)
	}
	if m.percent() != 0 {
		t.Errorf("percent = %v", m.percent())
	}
	if (progressModel{}).percent() != 0 {
		t.Error("zero total must not divide by zero")
	}
}

func TestHeadlessProgressBar(t *testing.T) {
	var buf bytes.Buffer
	b := newHeadlessProgressBar("start", 10, &buf)

	b.SetTitle("render app.js")
	b.Increment(1)
	b.SetTitle("git-init")
	b.Increment(20)
	b.Done()

	want := "[ 1/10] render app.js\n[10/10] git-init\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProgressImpl_Start(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf bytes.Buffer
	bar := NewProgress(testTheme(), hm, &buf).Start("generate", 1)
	if _, ok := bar.(*headlessProgressBar); !ok {
		t.Fatalf("headless session got %T", bar)
	}

	hm.ForceHeadless(false)
	bar = NewProgress(&Theme{NoColor: true, Colors: DefaultColors}, hm, &buf).Start("generate", 1)
	if _, ok := bar.(*headlessProgressBar); !ok {
		t.Fatalf("colorless session got %T", bar)
	}
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless not honored")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive not honored")
	}
}

func TestNewTheme(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if NewTheme(false).NoColor {
		t.Error("colors should be on by default")
	}
	if !NewTheme(true).NoColor {
		t.Error("noColor flag ignored")
	}
	t.Setenv("NO_COLOR", "1")
	if !NewTheme(false).NoColor {
		t.Error("NO_COLOR ignored")
	}
}
