package isocoins

import "time"

// Animation describes a looping frame sequence.
// Sheet names an equal-width horizontal sprite strip for pixel front ends;
// Glyphs holds one rune per frame for the terminal.
type Animation struct {
	Name       string
	FrameCount int
	Sheet      string
	Glyphs     string
	Speed      time.Duration
}

// Glyph returns the terminal rune for frame i, or '?' when no glyphs are set.
func (a Animation) Glyph(i int) rune {
	runes := []rune(a.Glyphs)
	if len(runes) == 0 {
		return '?'
	}
	if i < 0 {
		i = 0
	}
	return runes[i%len(runes)]
}

// Valid reports whether the animation has at least one frame.
func (a Animation) Valid() bool {
	return a.FrameCount > 0
}

// AnimationSet holds the player's animations, one per outcome.
type AnimationSet struct {
	Idle Animation
	Won  Animation
	Lost Animation
}

// For returns the animation to play for an outcome.
// Outcomes without a valid animation fall back to Idle.
func (s AnimationSet) For(o Outcome) Animation {
	switch o {
	case OutcomeWon:
		if s.Won.Valid() {
			return s.Won
		}
	case OutcomeLost:
		if s.Lost.Valid() {
			return s.Lost
		}
	}
	return s.Idle
}

// Animator advances one animation's frame counter.
type Animator struct {
	anim  Animation
	frame int
	timer time.Duration
}

// NewAnimator starts an animator at frame 0.
func NewAnimator(a Animation) *Animator {
	return &Animator{anim: a}
}

// Animation returns the animation being played.
func (a *Animator) Animation() Animation {
	return a.anim
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	return a.frame
}

// Advance adds dt to the timer. Once the timer exceeds the frame time it
// restarts from zero and the frame moves on by one, however large dt was.
func (a *Animator) Advance(dt time.Duration) {
	if a.anim.FrameCount <= 1 || a.anim.Speed <= 0 {
		return
	}
	a.timer += dt
	if a.timer > a.anim.Speed {
		a.timer = 0
		a.frame = (a.frame + 1) % a.anim.FrameCount
	}
}

// Switch changes the animation and rewinds to frame 0.
// Switching to the animation already playing is a no-op.
func (a *Animator) Switch(next Animation) {
	if a.anim.Name == next.Name && a.anim.FrameCount == next.FrameCount {
		return
	}
	a.anim = next
	a.frame = 0
	a.timer = 0
}

// Rewind returns to frame 0 with an empty timer.
func (a *Animator) Rewind() {
	a.frame = 0
	a.timer = 0
}

// Default animation timings.
const (
	CoinFrameTime   = 60 * time.Millisecond
	PlayerFrameTime = 180 * time.Millisecond
)

// DefaultCoinAnimation is the spinning coin: ten frames, 60 ms each.
func DefaultCoinAnimation() Animation {
	return Animation{
		Name:       "coin",
		FrameCount: 10,
		Sheet:      "sprites/coin.png",
		Glyphs:     "$Oo0|!|0oO",
		Speed:      CoinFrameTime,
	}
}

// DefaultPlayerAnimations returns the idle loop plus win and loss poses.
func DefaultPlayerAnimations() AnimationSet {
	return AnimationSet{
		Idle: Animation{
			Name:       "idle",
			FrameCount: 4,
			Sheet:      "sprites/player_idle.png",
			Glyphs:     "@@&@",
			Speed:      PlayerFrameTime,
		},
		Won: Animation{
			Name:       "won",
			FrameCount: 2,
			Sheet:      "sprites/player_won.png",
			Glyphs:     "*+",
			Speed:      PlayerFrameTime,
		},
		Lost: Animation{
			Name:       "lost",
			FrameCount: 2,
			Sheet:      "sprites/player_lost.png",
			Glyphs:     "xX",
			Speed:      PlayerFrameTime,
		},
	}
}
