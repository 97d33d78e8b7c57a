package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Frame    int
	Score    int
	SnakeLen int
	Head     Cell
	Dir      Direction
	Food     Cell
	State    GameStateType
}

func (e *engine) snapshot(paused bool) Snapshot {
	state := StatePlaying
	switch {
	case e.over:
		state = StateGameOver
	case paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     e.tick,
		Frame:    e.frame,
		Score:    e.score,
		SnakeLen: len(e.body),
		Head:     e.head(),
		Dir:      e.dir,
		Food:     e.food,
		State:    state,
	}
}
