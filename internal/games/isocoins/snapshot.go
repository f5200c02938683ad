package isocoins

import "time"

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Map         string
	Outcome     string
	Row         int
	Col         int
	Collected   int
	Total       int
	Elapsed     time.Duration
	CoinFrame   int
	PlayerAnim  string
	PlayerFrame int
	Paused      bool
}

// Snapshot returns the session part of a snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Outcome:     s.outcome.String(),
		Row:         s.player.Row,
		Col:         s.player.Col,
		Collected:   s.collected,
		Total:       s.total,
		Elapsed:     s.elapsed,
		CoinFrame:   s.coinAnim.Frame(),
		PlayerAnim:  s.playerAnim.Animation().Name,
		PlayerFrame: s.playerAnim.Frame(),
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot
	if g.session != nil {
		snap = g.session.Snapshot()
	}
	snap.Tick = g.tick
	snap.Map = g.mapName
	snap.Paused = g.paused
	return snap
}
