// Package snake implements the snake game session: a menu/play/game-over
// state machine driving a fixed-tick grid simulation.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the active screen of a session.
type State int

const (
	StateMainMenu State = iota
	StateGame
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StateGame:
		return "game"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// InviteText is shown on the main menu.
const InviteText = `Press "Enter" to start`

// initialLength is the number of segments a new snake starts with.
const initialLength = 3

// Session owns the whole game: grid, snake, timer and the screen state.
// It is driven by Update and Render once per frame and is not safe for
// concurrent use.
type Session struct {
	rng     *rand.Rand
	timer   tickTimer
	palette palette

	state State
	grid  *Grid
	body  []Point // Tail at index 0, head last

	pending   Direction // Last direction key seen while playing
	committed Direction // Direction used by the last step
	foodEaten int
	lastScore int // Food eaten in the most recently finished game
	won       bool
	ticks     uint64

	scoreText    string
	gameOverText string
}

// NewSession creates a session on the main menu.
func NewSession(cfg config.SnakeConfig, rc core.RuntimeConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.Palette.Resolve()
	if err != nil {
		return nil, err
	}

	return &Session{
		rng:     rand.New(rand.NewSource(rc.Seed)),
		timer:   newTickTimer(cfg.Timing.TickInterval()),
		palette: newPalette(colors),
		state:   StateMainMenu,
		grid:    NewGrid(cfg.Field.Width, cfg.Field.Height),
		body:    make([]Point, 0, cfg.Field.Width*cfg.Field.Height),
	}, nil
}

// Update processes one frame of input and advances the simulation by
// elapsed wall-clock time.
func (s *Session) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionCancel) {
		return core.StepResult{State: s.GameState(), Quit: true}
	}

	switch s.state {
	case StateMainMenu, StateGameOver:
		if in.Has(core.ActionConfirm) {
			s.StartGame()
		}

	case StateGame:
		if d := PressedDirection(in); d != DirUnassigned {
			s.pending = d
		}

		s.timer.Advance(elapsed)
		for s.timer.Due() {
			s.step()
		}
	}

	return core.StepResult{State: s.GameState()}
}

// StartGame resets the field and snake and begins a new game.
func (s *Session) StartGame() {
	s.setFoodEaten(0)
	s.grid.Reset()
	s.resetSnake()
	s.pending = DirUnassigned
	s.committed = DirUnassigned
	s.won = false
	s.ticks = 0
	s.gameOverText = ""

	// A validated field always has room for the first food.
	s.placeFood()

	s.state = StateGame
	s.timer.Start()
}

// StopGame ends the running game as a loss. Calling it outside of a game
// does nothing, so the game-over message keeps the real final count.
func (s *Session) StopGame() {
	if s.state != StateGame {
		return
	}
	s.finish(false)
}

// finish moves to the game-over screen. The grid and snake keep their
// last state; the food counter is reset only after the message is built.
func (s *Session) finish(won bool) {
	headline := "Game Over!"
	if won {
		headline = "You win!"
	}
	s.gameOverText = fmt.Sprintf("%s You ate %d food.\n%s", headline, s.foodEaten, InviteText)
	s.scoreText = ""
	s.state = StateGameOver
	s.won = won
	s.pending = DirUnassigned
	s.committed = DirUnassigned
	s.lastScore = s.foodEaten
	s.foodEaten = 0
	s.timer.Stop()
}

// resetSnake lays the starting snake vertically in the middle of the
// field, tail on top and head below, heading down.
func (s *Session) resetSnake() {
	col := s.grid.Width() / 2
	top := s.grid.Height()/2 - initialLength/2

	s.body = s.body[:0]
	for i := 0; i < initialLength; i++ {
		p := Point{Row: top + i, Col: col}
		s.body = append(s.body, p)
		s.grid.Set(p, CellSnakeBody)
	}
	s.grid.Set(s.head(), CellSnakeHead)
}

// step runs one movement tick.
func (s *Session) step() {
	s.ticks++

	head := s.head()
	dir := nextDirection(heading(head, s.body[len(s.body)-2]), s.pending)
	s.committed = dir
	next := head.Add(dir)

	ate := false
	switch s.grid.At(next) {
	case CellWall, CellSnakeBody, CellSnakeHead:
		s.StopGame()
		return
	case CellFood:
		ate = true
		s.setFoodEaten(s.foodEaten + 1)
	}

	s.body = append(s.body, next)
	s.grid.Set(next, CellSnakeHead)
	s.grid.Set(head, CellSnakeBody)

	if ate {
		if !s.placeFood() {
			s.finish(true)
		}
		return
	}

	tail := s.body[0]
	s.grid.Set(tail, CellEmpty)
	s.body = s.body[1:]
}

// placeFood puts food on a uniformly chosen empty cell.
// Returns false when the board has no empty cell left.
func (s *Session) placeFood() bool {
	empty := s.grid.Find(CellEmpty)
	if len(empty) == 0 {
		return false
	}
	s.grid.Set(empty[s.rng.Intn(len(empty))], CellFood)
	return true
}

func (s *Session) setFoodEaten(n int) {
	s.foodEaten = n
	s.scoreText = fmt.Sprintf("Score\n%d", n)
}

func (s *Session) head() Point {
	return s.body[len(s.body)-1]
}

// State returns the active screen.
func (s *Session) State() State {
	return s.state
}

// GameState summarizes the session for the platform layer.
func (s *Session) GameState() core.GameState {
	score := s.foodEaten
	if s.state == StateGameOver {
		score = s.lastScore
	}
	return core.GameState{
		Screen:   s.state.String(),
		Score:    score,
		GameOver: s.state == StateGameOver,
		Won:      s.won,
	}
}

// Body returns a copy of the snake's segments, tail first.
func (s *Session) Body() []Point {
	return append([]Point(nil), s.body...)
}

// Grid returns the session's field. Callers must not modify it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// DebugState returns a string representation of the game state.
func (s *Session) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Tick: %d, Food eaten: %d\n", s.state, s.ticks, s.foodEaten)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(s.body), s.committed, s.pending)
	if len(s.body) > 0 {
		h := s.head()
		fmt.Fprintf(&b, "Head: (%d, %d)\n", h.Row, h.Col)
	}
	return b.String()
}
