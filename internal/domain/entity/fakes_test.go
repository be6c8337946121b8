package entity

import (
	"bytes"
	"log"
)

type fakeInput map[Button]bool

func (f fakeInput) Held(b Button) bool { return f[b] }

func (f fakeInput) press(bs ...Button) {
	for _, b := range bs {
		f[b] = true
	}
}

func (f fakeInput) release(bs ...Button) {
	for _, b := range bs {
		delete(f, b)
	}
}

func (f fakeInput) releaseAll() {
	for b := range f {
		delete(f, b)
	}
}

type fakeAnimator struct {
	played   []string
	visible  bool
	flipX    bool
	alpha    float64
	frame    int
	stopped  int
	complete func()
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{visible: true, alpha: 1}
}

func (a *fakeAnimator) Play(name string) {
	a.played = append(a.played, name)
	a.frame = 1
}
func (a *fakeAnimator) Stop()                   { a.stopped++ }
func (a *fakeAnimator) SetVisible(visible bool) { a.visible = visible }
func (a *fakeAnimator) Visible() bool           { return a.visible }
func (a *fakeAnimator) SetFlipX(flip bool)      { a.flipX = flip }
func (a *fakeAnimator) SetAlpha(alpha float64)  { a.alpha = alpha }
func (a *fakeAnimator) Frame() int              { return a.frame }
func (a *fakeAnimator) OnComplete(fn func())    { a.complete = fn }
func (a *fakeAnimator) ClearOnComplete()        { a.complete = nil }

func (a *fakeAnimator) last() string {
	if len(a.played) == 0 {
		return ""
	}
	return a.played[len(a.played)-1]
}

// finish simulates the end of a non-looping clip
func (a *fakeAnimator) finish() {
	fn := a.complete
	a.complete = nil
	if fn != nil {
		fn()
	}
}

type fakeWorld struct {
	width    float64
	walls    []Rect
	enemies  []*fakeTarget
	powerUps []*PowerUp
	defeated []*Character
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{width: 320}
}

func (w *fakeWorld) LevelWidth() float64 { return w.width }

func (w *fakeWorld) Wall(id WallID) (Rect, bool) {
	if id < 0 || int(id) >= len(w.walls) {
		return Rect{}, false
	}
	return w.walls[id], true
}

func (w *fakeWorld) OverlapEnemies(area Rect, fn func(t Target)) {
	for _, e := range w.enemies {
		if e.area.Intersects(area) {
			fn(e)
		}
	}
}

func (w *fakeWorld) OverlapPowerUps(area Rect, fn func(p *PowerUp)) {
	for _, p := range w.powerUps {
		if p.Body().Enabled && p.Body().Rect().Intersects(area) {
			fn(p)
		}
	}
}

func (w *fakeWorld) PlayerDefeated(c *Character) {
	w.defeated = append(w.defeated, c)
}

type fakeTarget struct {
	area Rect
	hits int
}

func (t *fakeTarget) GotHit(Attacker) bool {
	t.hits++
	return true
}

type fakeAttacker struct {
	strength int
	body     *Body
}

func (a *fakeAttacker) AttackStrength() int { return a.strength }
func (a *fakeAttacker) Body() *Body         { return a.body }

type testCharacter struct {
	*Character
	input  fakeInput
	world  *fakeWorld
	sprite *fakeAnimator
	blade  *fakeAnimator
	logs   *bytes.Buffer
}

func createTestCharacter() *testCharacter {
	tuning := DefaultTuning()
	input := fakeInput{}
	world := newFakeWorld()
	sprite := newFakeAnimator()
	blade := newFakeAnimator()
	sword := NewSword(blade, tuning.SwordFrameWidth, tuning.SwordFrameHeight, tuning.SwordActiveFrame)
	body := NewBody(100, 100, tuning.BodyWidth, tuning.BodyHeight)

	c := NewCharacter(tuning, input, world, body, sprite, sword)
	logs := &bytes.Buffer{}
	c.SetLogger(log.New(logs, "", 0))
	c.Body().OnFloor = true

	return &testCharacter{
		Character: c,
		input:     input,
		world:     world,
		sprite:    sprite,
		blade:     blade,
		logs:      logs,
	}
}

// step runs one frame with the floor contact the physics would report
func (tc *testCharacter) step(onFloor bool) {
	tc.Body().OnFloor = onFloor
	tc.Update(1.0 / 60)
}
