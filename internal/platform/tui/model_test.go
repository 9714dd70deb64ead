package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	elapsed []time.Duration
	inputs  []core.InputFrame
	state   core.GameState
	quit    bool
}

func (g *fakeGame) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	// The model clears its frame after Update, so keep a copy
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state, Quit: g.quit}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "snake", core.ColorGreen)
}

func (g *fakeGame) GameState() core.GameState {
	return g.state
}

func newTestModel(game *fakeGame) Model {
	return NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, nil)
}

func TestModelReservesHelpRow(t *testing.T) {
	m := newTestModel(&fakeGame{})

	if m.screen.Width() != 40 || m.screen.Height() != 9 {
		t.Errorf("screen = %dx%d, expected 40x9", m.screen.Width(), m.screen.Height())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("resized screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelFrameElapsed(t *testing.T) {
	game := &fakeGame{state: core.GameState{Screen: "game"}}
	m := newTestModel(game)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	frames := []time.Time{
		start,
		start.Add(16 * time.Millisecond),
		start.Add(50 * time.Millisecond),
		start.Add(40 * time.Millisecond), // Clock went backwards
	}
	for _, f := range frames {
		updated, cmd := m.Update(FrameMsg(f))
		m = updated.(Model)
		if cmd == nil {
			t.Fatal("each frame should schedule the next one")
		}
	}

	expected := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond, 0}
	if len(game.elapsed) != len(expected) {
		t.Fatalf("game updated %d times, expected %d", len(game.elapsed), len(expected))
	}
	for i := range expected {
		if game.elapsed[i] != expected[i] {
			t.Errorf("frame %d elapsed = %v, expected %v", i, game.elapsed[i], expected[i])
		}
	}
}

func TestModelBuffersKeysUntilFrame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if len(game.inputs) != 0 {
		t.Fatal("keys should not reach the game before a frame")
	}

	updated, _ = m.Update(FrameMsg(time.Now()))
	m = updated.(Model)
	updated, _ = m.Update(FrameMsg(time.Now()))
	m = updated.(Model)

	first := game.inputs[0]
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionConfirm) {
		t.Errorf("first frame should carry both keys, got %v", first.Actions)
	}
	if len(game.inputs[1].Actions) != 0 {
		t.Errorf("input should be cleared after each frame, got %v", game.inputs[1].Actions)
	}
}

func TestModelQuitsWhenGameAsks(t *testing.T) {
	game := &fakeGame{quit: true}
	m := newTestModel(game)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	updated, cmd := m.Update(FrameMsg(time.Now()))
	m = updated.(Model)

	if !game.inputs[0].Has(core.ActionCancel) {
		t.Error("esc should be forwarded as cancel")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the game requested it")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()
	lines := strings.Split(view, "\n")

	if len(lines) != 10 {
		t.Fatalf("view should have 9 game rows and a help row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "snake") {
		t.Errorf("game output missing from view: %q", lines[0])
	}
	if !strings.Contains(lines[9], "up") {
		t.Errorf("help footer missing from view: %q", lines[9])
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m.screenshotDir = filepath.Join(t.TempDir(), "shots")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("screenshot dir not created: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "snake_") {
		t.Fatalf("expected one snake screenshot, got %v", entries)
	}

	data, err := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "snake") {
		t.Errorf("screenshot should hold the rendered screen, got %q", data)
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q, expected a saved message", m.status)
	}
}

func TestScreenshotDir(t *testing.T) {
	t.Setenv("HOME", "/tmp/snake-home")

	if got := ScreenshotDir(); got != filepath.Join("/tmp/snake-home", ".snake", "screenshots") {
		t.Errorf("ScreenshotDir() = %q", got)
	}
}
