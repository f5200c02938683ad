package isocoins

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// LogStart reports a fresh session.
func LogStart(l *log.Logger, mapName string, s *Session) {
	_, total := s.Coins()
	l.Info("game started", "map", mapName, "coins", total)
	l.Info("collect every coin without stepping on lava")
}

// LogMove reports the visible effect of a move, if any.
func LogMove(l *log.Logger, res MoveResult, s *Session) {
	if res.Status != MoveApplied {
		return
	}
	collected, total := s.Coins()
	if res.Coin {
		l.Debug("coin collected", "coins", fmt.Sprintf("%d/%d", collected, total))
	}
	switch res.Outcome {
	case OutcomeWon:
		elapsed, _ := s.WinTime()
		l.Info("congratulations, you won", "elapsed", formatSeconds(elapsed))
		l.Info("press R to restart")
	case OutcomeLost:
		l.Info("game over, you stepped on lava", "coins", fmt.Sprintf("%d/%d", collected, total))
		l.Info("press R to restart")
	}
}

// formatSeconds renders d with one decimal, e.g. "12.3s".
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
