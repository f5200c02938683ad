package isocoins

import (
	"testing"
	"time"
)

func TestAnimatorCoinCycle(t *testing.T) {
	a := NewAnimator(DefaultCoinAnimation())

	// The timer must exceed the frame time, not just reach it.
	a.Advance(60 * time.Millisecond)
	if a.Frame() != 0 {
		t.Errorf("frame after exactly 60ms = %d, expected 0", a.Frame())
	}
	a.Advance(time.Millisecond)
	if a.Frame() != 1 {
		t.Errorf("frame after 61ms = %d, expected 1", a.Frame())
	}

	for i := 0; i < 9; i++ {
		a.Advance(61 * time.Millisecond)
	}
	if a.Frame() != 0 {
		t.Errorf("frame after a full cycle = %d, expected 0", a.Frame())
	}
}

func TestAnimatorLongFrameCollapses(t *testing.T) {
	a := NewAnimator(DefaultPlayerAnimations().Idle)

	// A 1s hitch advances a single frame and restarts the timer.
	a.Advance(time.Second)
	if a.Frame() != 1 {
		t.Errorf("frame after long delta = %d, expected 1", a.Frame())
	}
	a.Advance(180 * time.Millisecond)
	if a.Frame() != 1 {
		t.Errorf("timer should restart from zero, frame = %d", a.Frame())
	}
}

func TestAnimatorSingleFrame(t *testing.T) {
	a := NewAnimator(Animation{Name: "still", FrameCount: 1, Speed: time.Millisecond})
	a.Advance(time.Second)
	if a.Frame() != 0 {
		t.Errorf("single-frame animation moved to frame %d", a.Frame())
	}
}

func TestAnimatorSwitch(t *testing.T) {
	set := DefaultPlayerAnimations()
	a := NewAnimator(set.Idle)
	a.Advance(200 * time.Millisecond)

	a.Switch(set.Idle)
	if a.Frame() != 1 {
		t.Errorf("switching to the same animation rewound it, frame = %d", a.Frame())
	}

	a.Switch(set.Won)
	if a.Frame() != 0 || a.Animation().Name != "won" {
		t.Errorf("after switch: %q frame %d", a.Animation().Name, a.Frame())
	}
}

func TestAnimationSetFallback(t *testing.T) {
	set := DefaultPlayerAnimations()

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeRunning, "idle"},
		{OutcomeWon, "won"},
		{OutcomeLost, "lost"},
	}
	for _, tc := range tests {
		if got := set.For(tc.outcome).Name; got != tc.want {
			t.Errorf("For(%v) = %q, expected %q", tc.outcome, got, tc.want)
		}
	}

	set.Won = Animation{}
	if got := set.For(OutcomeWon).Name; got != "idle" {
		t.Errorf("For(won) without a won animation = %q, expected idle", got)
	}
}

func TestAnimationGlyph(t *testing.T) {
	a := Animation{Glyphs: "ab"}
	if a.Glyph(0) != 'a' || a.Glyph(1) != 'b' || a.Glyph(2) != 'a' {
		t.Error("Glyph should cycle through the strip")
	}
	if (Animation{}).Glyph(3) != '?' {
		t.Error("empty strip should render '?'")
	}
}

func TestSessionFramesDependOnTimeOnly(t *testing.T) {
	s1 := NewSession(mustParse(t, fiveByFive), DefaultRules())
	s2 := NewSession(mustParse(t, fiveByFive), DefaultRules())

	for i := 0; i < 30; i++ {
		s1.Advance(50 * time.Millisecond)
		s2.Advance(50 * time.Millisecond)
		if i%4 == 0 {
			s1.Move(0, 1)
			s1.Move(0, -1)
		}
	}

	if s1.CoinFrame() != s2.CoinFrame() || s1.PlayerFrame() != s2.PlayerFrame() {
		t.Errorf("frames differ: coin %d/%d player %d/%d",
			s1.CoinFrame(), s2.CoinFrame(), s1.PlayerFrame(), s2.PlayerFrame())
	}
}
