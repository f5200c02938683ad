package isocoins

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/tilemap"
)

func mustParse(t *testing.T, src string) *tilemap.Map {
	t.Helper()
	m, err := tilemap.Parse(strings.NewReader(src), tilemap.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

// step waits out the cooldown and moves.
func step(s *Session, dRow, dCol int) MoveResult {
	s.Advance(s.rules.MoveCooldown)
	return s.Move(dRow, dCol)
}

// fiveByFive has three coins; the player spawns at (2, 2).
const fiveByFive = `tiles.png
5 5
0 0 0 0 0
0 0 0c 0 0
0 0 0 0c 0
0 0 0 0 0
0 0 0c 0 0
`

func TestSpawnStampedProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("reset stamps the spawn marker and clears the spawn coin", prop.ForAll(
		func(rows, cols, tile int, coin bool) bool {
			m := tilemap.New("t.png", rows, cols)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					m.Set(i, j, tilemap.Tile{Index: tile, HasCoin: coin})
				}
			}

			s := NewSession(m, DefaultRules())
			pos := s.Player()
			if pos.Row != rows/2 || pos.Col != cols/2 {
				return false
			}
			spawn := s.Grid().At(pos.Row, pos.Col)
			if spawn.Index != 6 || spawn.HasCoin {
				return false
			}

			// Total is counted after the spawn coin is cleared.
			_, total := s.Coins()
			want := 0
			if coin {
				want = rows*cols - 1
			}
			return total == want && s.Outcome() == OutcomeRunning
		},
		gen.IntRange(1, 30),
		gen.IntRange(1, 30),
		gen.IntRange(0, 6),
		gen.Bool(),
	))

	properties.Property("blocked moves change nothing", prop.ForAll(
		func(rows, cols, dRow, dCol int) bool {
			m := tilemap.New("t.png", rows, cols)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					m.Set(i, j, tilemap.Tile{Index: 5, HasCoin: true})
				}
			}
			s := NewSession(m, DefaultRules())
			before := s.Snapshot()

			res := step(s, dRow, dCol)
			after := s.Snapshot()

			if dRow == 0 && dCol == 0 {
				return res.Status == MoveIdle
			}
			return res.Status == MoveBlocked &&
				after.Row == before.Row && after.Col == before.Col &&
				after.Collected == before.Collected && after.Total == before.Total &&
				after.Outcome == before.Outcome
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 12),
		gen.IntRange(-1, 1),
		gen.IntRange(-1, 1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSpawnOverwritesTile(t *testing.T) {
	m := mustParse(t, "t.png\n3 3\n0 0 0\n0 3c 0\n0 0 0\n")
	s := NewSession(m, DefaultRules())

	if got := s.Grid().At(1, 1); got.Index != 6 || got.HasCoin {
		t.Errorf("spawn cell = %+v, expected {6 false}", got)
	}
	// The source map is left untouched.
	if got := m.At(1, 1); got.Index != 3 || !got.HasCoin {
		t.Errorf("source map modified: %+v", got)
	}
}

func TestWinScenario(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())

	if c, total := s.Coins(); c != 0 || total != 3 {
		t.Fatalf("Coins() = %d/%d, expected 0/3", c, total)
	}
	if pos := s.Player(); pos != (Position{2, 2}) {
		t.Fatalf("Player() = %+v, expected (2,2)", pos)
	}

	// Up onto (1,2): first coin.
	res := step(s, -1, 0)
	if res.Status != MoveApplied || !res.Coin || res.Outcome != OutcomeRunning {
		t.Fatalf("first coin: %+v", res)
	}
	// Down-right onto (2,3): second coin, diagonal step.
	res = step(s, 1, 1)
	if res.Status != MoveApplied || !res.Coin || s.Outcome() != OutcomeRunning {
		t.Fatalf("second coin: %+v", res)
	}
	if pos := s.Player(); pos != (Position{2, 3}) {
		t.Fatalf("Player() = %+v, expected (2,3)", pos)
	}
	// Down-left to (3,2), then down to (4,2): third coin wins on that move only.
	res = step(s, 1, -1)
	if res.Status != MoveApplied || res.Coin || s.Outcome() != OutcomeRunning {
		t.Fatalf("empty step: %+v", res)
	}
	res = step(s, 1, 0)
	if res.Status != MoveApplied || !res.Coin || res.Outcome != OutcomeWon {
		t.Fatalf("third coin: %+v", res)
	}
	if !res.Ended() {
		t.Error("Ended() = false on the winning move")
	}

	if c, total := s.Coins(); c != 3 || total != 3 {
		t.Errorf("Coins() = %d/%d, expected 3/3", c, total)
	}
	winTime, won := s.WinTime()
	if !won || winTime != 4*DefaultMoveCooldown {
		t.Errorf("WinTime() = %v, %v; expected %v, true", winTime, won, 4*DefaultMoveCooldown)
	}

	// Terminal: further moves are ignored and the clock is frozen.
	if res := step(s, -1, 0); res.Status != MoveTerminal {
		t.Errorf("move after win: %+v", res)
	}
	if s.Elapsed() != winTime {
		t.Errorf("Elapsed() = %v after win, expected frozen at %v", s.Elapsed(), winTime)
	}
}

func TestCoinCountedOnce(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())

	step(s, -1, 0) // onto the coin at (1,2)
	step(s, 1, 0)  // back to spawn
	res := step(s, -1, 0)

	if res.Coin {
		t.Error("coin picked up twice")
	}
	if c, _ := s.Coins(); c != 1 {
		t.Errorf("collected = %d, expected 1", c)
	}
	if s.Grid().At(1, 2).HasCoin {
		t.Error("coin flag not cleared")
	}
}

func TestHazardOnFirstMoveLoses(t *testing.T) {
	m := mustParse(t, "t.png\n3 3\n0c 3 0c\n0 0 0\n0 0 0c\n")
	s := NewSession(m, DefaultRules())

	res := s.Move(-1, 0)
	if res.Status != MoveApplied || res.Outcome != OutcomeLost {
		t.Fatalf("Move onto lava = %+v, expected applied/lost", res)
	}
	if s.Outcome() != OutcomeLost {
		t.Errorf("Outcome() = %v, expected lost", s.Outcome())
	}
	if c, total := s.Coins(); c != 0 || total != 3 {
		t.Errorf("Coins() = %d/%d, expected 0/3", c, total)
	}
	if _, won := s.WinTime(); won {
		t.Error("WinTime() reports a win after a loss")
	}
}

func TestWinBeatsLoss(t *testing.T) {
	// The only coin sits on lava.
	m := mustParse(t, "t.png\n3 3\n0 3c 0\n0 0 0\n0 0 0\n")
	s := NewSession(m, DefaultRules())

	res := s.Move(-1, 0)
	if res.Outcome != OutcomeWon {
		t.Errorf("collecting the last coin on lava gave %v, expected won", res.Outcome)
	}
}

func TestNoCoinsFirstMoveWins(t *testing.T) {
	m := mustParse(t, "t.png\n3 3\n0 0 0\n0 0 0\n0 3 0\n")
	s := NewSession(m, DefaultRules())

	if _, total := s.Coins(); total != 0 {
		t.Fatalf("total = %d, expected 0", total)
	}
	if s.Outcome() != OutcomeRunning {
		t.Fatal("session should start running even without coins")
	}
	// Onto lava: the win check comes first.
	if res := s.Move(1, 0); res.Outcome != OutcomeWon {
		t.Errorf("first move = %+v, expected won", res)
	}
}

func TestBlockedMoves(t *testing.T) {
	m := mustParse(t, "t.png\n3 3\n0c 5 0\n0 0 0\n0 0 0c\n")
	s := NewSession(m, DefaultRules())
	before := s.Snapshot()

	// Into the wall at (0,1).
	if res := s.Move(-1, 0); res.Status != MoveBlocked {
		t.Errorf("move into wall = %v, expected blocked", res.Status)
	}
	after := s.Snapshot()
	if after != before {
		t.Errorf("blocked move changed state:\nbefore %+v\nafter  %+v", before, after)
	}

	// A blocked move does not start the cooldown.
	if res := s.Move(0, -1); res.Status != MoveApplied {
		t.Errorf("move after blocked = %v, expected applied", res.Status)
	}

	// Out of bounds from (1,0).
	if res := step(s, 0, -1); res.Status != MoveBlocked {
		t.Errorf("move off the grid = %v, expected blocked", res.Status)
	}
	if pos := s.Player(); pos != (Position{1, 0}) {
		t.Errorf("Player() = %+v, expected (1,0)", pos)
	}
}

func TestCooldown(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())

	// The first move is allowed straight away.
	if res := s.Move(0, 1); res.Status != MoveApplied {
		t.Fatalf("first move = %v, expected applied", res.Status)
	}

	// A second input inside the window is dropped, not queued.
	s.Advance(100 * time.Millisecond)
	if res := s.Move(0, -1); res.Status != MoveCooldown {
		t.Errorf("second move = %v, expected cooldown", res.Status)
	}
	if pos := s.Player(); pos != (Position{2, 3}) {
		t.Errorf("Player() = %+v, expected (2,3)", pos)
	}

	// Just before the window closes.
	s.Advance(99 * time.Millisecond)
	if res := s.Move(0, -1); res.Status != MoveCooldown {
		t.Errorf("move at 199ms = %v, expected cooldown", res.Status)
	}

	// Exactly at the cooldown it is accepted again.
	s.Advance(1 * time.Millisecond)
	if res := s.Move(0, -1); res.Status != MoveApplied {
		t.Errorf("move at 200ms = %v, expected applied", res.Status)
	}
}

func TestTwoInputsWithinCooldown(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())

	applied := 0
	for _, d := range [][2]int{{0, 1}, {1, 0}} {
		s.Advance(50 * time.Millisecond)
		if s.Move(d[0], d[1]).Status == MoveApplied {
			applied++
		}
	}
	if applied != 1 {
		t.Errorf("applied moves = %d, expected 1", applied)
	}
}

func TestRestart(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())

	if s.Restart() {
		t.Error("Restart() acted while running")
	}

	step(s, -1, 0)
	step(s, 1, 1)
	step(s, 1, -1)
	step(s, 1, 0)
	if s.Outcome() != OutcomeWon {
		t.Fatalf("setup: outcome %v", s.Outcome())
	}

	if !s.Restart() {
		t.Fatal("Restart() = false after win")
	}
	if s.Outcome() != OutcomeRunning || s.Elapsed() != 0 {
		t.Errorf("after restart: outcome %v elapsed %v", s.Outcome(), s.Elapsed())
	}
	if c, total := s.Coins(); c != 0 || total != 3 {
		t.Errorf("Coins() = %d/%d after restart, expected 0/3", c, total)
	}
	if pos := s.Player(); pos != (Position{2, 2}) {
		t.Errorf("Player() = %+v after restart", pos)
	}
	if !s.Grid().At(1, 2).HasCoin {
		t.Error("coin not restored by restart")
	}
	if s.PlayerAnimation().Name != "idle" {
		t.Errorf("PlayerAnimation() = %q after restart, expected idle", s.PlayerAnimation().Name)
	}
}

func TestPlayerAnimationFollowsOutcome(t *testing.T) {
	m := mustParse(t, "t.png\n3 3\n0 3 0\n0 0 0c\n0 0 0\n")
	s := NewSession(m, DefaultRules())

	if got := s.PlayerAnimation().Name; got != "idle" {
		t.Errorf("running animation = %q, expected idle", got)
	}
	s.Move(-1, 0)
	if got := s.PlayerAnimation().Name; got != "lost" {
		t.Errorf("lost animation = %q, expected lost", got)
	}

	// Without a loss animation the idle loop keeps playing.
	rules := DefaultRules()
	rules.Player.Lost = Animation{}
	s = NewSession(m, rules)
	s.Move(-1, 0)
	if got := s.PlayerAnimation().Name; got != "idle" {
		t.Errorf("fallback animation = %q, expected idle", got)
	}
}

func TestCustomTileKinds(t *testing.T) {
	rules := DefaultRules()
	rules.Kinds = TileKinds{Hazard: 2, Wall: 4, Spawn: 9}

	m := mustParse(t, "t.png\n3 3\n0 4 0\n2 0 0c\n0 0 0\n")
	s := NewSession(m, rules)

	if got := s.Grid().At(1, 1).Index; got != 9 {
		t.Errorf("spawn index = %d, expected 9", got)
	}
	if res := s.Move(-1, 0); res.Status != MoveBlocked {
		t.Errorf("move into custom wall = %v", res.Status)
	}
	if res := s.Move(0, -1); res.Outcome != OutcomeLost {
		t.Errorf("move onto custom hazard = %+v", res)
	}
}

func TestOutcomeStrings(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeRunning: "running",
		OutcomeWon:     "won",
		OutcomeLost:    "lost",
		Outcome(42):    "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, expected %q", int(o), got, want)
		}
	}
}

func TestCooldownInWholeTicks(t *testing.T) {
	s := NewSession(mustParse(t, fiveByFive), DefaultRules())
	tick := time.Second / 60

	if res := s.Move(0, 1); res.Status != MoveApplied {
		t.Fatalf("first move = %v, expected applied", res.Status)
	}
	for i := 0; i < 11; i++ {
		s.Advance(tick)
	}
	if res := s.Move(0, -1); res.Status != MoveCooldown {
		t.Errorf("move after 11 ticks = %v, expected cooldown", res.Status)
	}
	s.Advance(tick)
	if res := s.Move(0, -1); res.Status != MoveApplied {
		t.Errorf("move after 12 ticks = %v, expected applied", res.Status)
	}
}
