package system

import (
	"github.com/younwookim/ninja/internal/domain/entity"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

// SpriteAnimator plays named clips from a sprite's animation table.
// Clips missing from the table show a single frame and never complete.
type SpriteAnimator struct {
	clips map[string]config.AnimationConfig

	clip     string
	frame    int // 0-based
	elapsed  float64
	playing  bool
	visible  bool
	flipX    bool
	alpha    float64
	complete func()
}

var _ entity.Animator = (*SpriteAnimator)(nil)

// NewSpriteAnimator creates a visible animator for a sprite config
func NewSpriteAnimator(cfg config.SpriteConfig) *SpriteAnimator {
	return &SpriteAnimator{
		clips:   cfg.Animations,
		visible: true,
		alpha:   1,
	}
}

// Play starts a clip. Playing the clip that is already running keeps its
// progress.
func (a *SpriteAnimator) Play(name string) {
	if a.playing && a.clip == name {
		return
	}
	a.clip = name
	a.frame = 0
	a.elapsed = 0
	a.playing = true
}

// Stop freezes the current frame
func (a *SpriteAnimator) Stop() { a.playing = false }

func (a *SpriteAnimator) SetVisible(visible bool) { a.visible = visible }
func (a *SpriteAnimator) Visible() bool           { return a.visible }
func (a *SpriteAnimator) SetFlipX(flip bool)      { a.flipX = flip }
func (a *SpriteAnimator) FlipX() bool             { return a.flipX }
func (a *SpriteAnimator) SetAlpha(alpha float64)  { a.alpha = alpha }
func (a *SpriteAnimator) Alpha() float64          { return a.alpha }

// Clip returns the name of the current clip
func (a *SpriteAnimator) Clip() string { return a.clip }

// Frame returns the 1-based frame index
func (a *SpriteAnimator) Frame() int { return a.frame + 1 }

// OnComplete registers the callback for the end of the current clip
func (a *SpriteAnimator) OnComplete(fn func()) { a.complete = fn }

// ClearOnComplete drops a pending callback
func (a *SpriteAnimator) ClearOnComplete() { a.complete = nil }

// Update advances the clip by dt seconds
func (a *SpriteAnimator) Update(dt float64) {
	if !a.playing {
		return
	}
	clip, ok := a.clips[a.clip]
	if !ok || clip.FPS <= 0 || clip.Frames <= 0 {
		return
	}

	a.elapsed += dt
	step := 1 / float64(clip.FPS)
	for a.elapsed >= step {
		a.elapsed -= step
		if a.frame+1 < clip.Frames {
			a.frame++
			continue
		}
		if clip.Loop {
			a.frame = 0
			continue
		}
		a.playing = false
		a.elapsed = 0
		if fn := a.complete; fn != nil {
			a.complete = nil
			fn()
		}
		return
	}
}
