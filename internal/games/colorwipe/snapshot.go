package colorwipe

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Points    int
	Attempts  int
	Remaining int
	CursorRow int
	CursorCol int
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Points:    g.points,
		Attempts:  g.attempts,
		Remaining: g.board.Remaining(),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		GameOver:  g.gameOver,
	}
}
