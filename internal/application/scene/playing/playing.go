// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/ninja/internal/application/replay"
	"github.com/younwookim/ninja/internal/application/scene"
	"github.com/younwookim/ninja/internal/application/state"
	"github.com/younwookim/ninja/internal/application/system"
	"github.com/younwookim/ninja/internal/domain/entity"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

// respawnDelay is how long the level freezes after a defeat
const respawnDelay = 1.0

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGround    = color.RGBA{80, 80, 100, 255}
	colorWall      = color.RGBA{120, 90, 60, 255}
	colorQuicksand = color.RGBA{194, 160, 90, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorManaFG    = color.RGBA{90, 120, 230, 255}
)

// Options selects the optional features of a session
type Options struct {
	// StageName is the stage file the session was loaded from
	StageName string
	// Players is the number of characters; ignored when replaying
	Players int
	// RecordPath enables recording when not empty
	RecordPath string
	// Replay drives the inputs from a recording instead of devices
	Replay *replay.Replayer
	// Sources binds devices to player slots. When empty, the keyboard and
	// connected gamepads are bound on the first frame.
	Sources []system.Source
	// Loader and Changes enable hot reload of the config directory
	Loader  *config.Loader
	Changes <-chan string
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	stageCfg    *config.StageConfig
	stage       *entity.Stage
	tuning      entity.Tuning
	state       state.GameState
	level       *system.Level
	inputSystem *system.InputSystem
	players     int
	bound       bool
	screenW     int
	screenH     int
	tileSize    int
	dt          float64

	// Defeats waiting for the respawn delay
	pending      []*entity.Character
	respawnTimer float64

	replayer *replay.Replayer

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Hot reload
	stageName string
	loader    *config.Loader
	changes   <-chan string

	justPressed func(ebiten.Key) bool
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, stage *entity.Stage, opts Options) (*Playing, error) {
	tuning, err := cfg.Tuning.EntityTuning()
	if err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	players := opts.Players
	if opts.Replay != nil {
		players = opts.Replay.Players()
	}
	if players < 1 || players > entity.MaxPlayers {
		return nil, fmt.Errorf("players must be 1..%d, got %d", entity.MaxPlayers, players)
	}

	display := cfg.Tuning.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		tuning:         tuning,
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		players:        players,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		tileSize:       stage.TileSize,
		dt:             1.0 / float64(framerate),
		replayer:       opts.Replay,
		recordFilename: opts.RecordPath,
		stageName:      opts.StageName,
		loader:         opts.Loader,
		changes:        opts.Changes,
		justPressed:    inpututil.IsKeyJustPressed,
	}

	for i, src := range opts.Sources {
		p.inputSystem.Bind(i, src)
	}
	p.bound = len(opts.Sources) > 0 || p.replayer != nil

	if err := p.buildLevel(); err != nil {
		return nil, err
	}

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.recordedStage(), players)
		log.Printf("Recording enabled: %s (%d players)", p.recordFilename, players)
	}

	return p, nil
}

// buildLevel populates a fresh level from the stage config
func (p *Playing) buildLevel() error {
	physics := system.NewPhysicsSystem(&p.config.Tuning.Physics, p.stage)
	level := system.NewLevel(p.stage, physics)
	level.OnDefeat = p.onDefeat

	ents := p.config.Entities
	for slot := 0; slot < p.players; slot++ {
		blade := system.NewSpriteAnimator(ents.Sword)
		sword := entity.NewSword(blade, p.tuning.SwordFrameWidth, p.tuning.SwordFrameHeight, p.tuning.SwordActiveFrame)
		x, y := p.spawnPoint(slot)
		body := entity.NewBody(x, y, p.tuning.BodyWidth, p.tuning.BodyHeight)
		c := entity.NewCharacter(p.tuning, p.inputSystem.Player(slot), level, body, system.NewSpriteAnimator(ents.Character), sword)
		if err := level.AddCharacter(c); err != nil {
			return err
		}
	}

	for _, spawn := range p.stageCfg.Enemies {
		ecfg, ok := ents.Enemies[spawn.Type]
		if !ok {
			return fmt.Errorf("unknown enemy type %q", spawn.Type)
		}
		level.SpawnEnemy(ecfg, spawn, system.NewSpriteAnimator(ecfg.Sprite))
	}

	for _, spawn := range p.stageCfg.PowerUps {
		if _, err := level.SpawnPowerUp(ents.PowerUp, spawn, system.NewSpriteAnimator(ents.PowerUp.Sprite)); err != nil {
			return err
		}
	}

	p.level = level
	p.pending = p.pending[:0]
	p.respawnTimer = 0
	p.state = state.StatePlaying
	return nil
}

// spawnPoint spreads the characters to the right of the stage spawn
func (p *Playing) spawnPoint(slot int) (float64, float64) {
	return p.stage.SpawnX + float64(slot)*p.tuning.BodyWidth*1.5, p.stage.SpawnY
}

func (p *Playing) onDefeat(c *entity.Character) {
	p.pending = append(p.pending, c)
	log.Printf("Player %d defeated (lives left: %d)", p.slotOf(c)+1, c.Lives())
}

func (p *Playing) slotOf(c *entity.Character) int {
	for i, other := range p.level.Characters() {
		if other == c {
			return i
		}
	}
	return -1
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()

	switch p.state {
	case state.StatePlaying:
		if err := p.updatePlaying(); err != nil {
			return nil, err
		}
	case state.StatePaused:
		if p.justPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateRespawning:
		p.updateRespawning()
	case state.StateGameOver:
		if p.replayer != nil {
			log.Printf("Replay ended in game over at frame %d", p.replayer.CurrentFrame())
			return nil, ebiten.Termination
		}
		if p.justPressed(ebiten.KeyZ) || p.justPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() error {
	// Check for pause
	if p.justPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil
	}

	// F5: Save recording manually
	if p.justPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if p.replayer != nil {
		frame, ok := p.replayer.Next()
		if !ok {
			log.Printf("Replay finished: %d frames", p.replayer.TotalFrames())
			return ebiten.Termination
		}
		p.inputSystem.Override(frame)
	} else {
		if !p.bound {
			n := p.inputSystem.BindConnected()
			p.bound = true
			log.Printf("Input devices bound: %d", n)
		}
		p.inputSystem.Update()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(p.inputSystem.Snapshot(p.players))
	}

	p.level.Update(p.dt)

	if len(p.pending) > 0 {
		p.state = state.StateRespawning
		p.respawnTimer = respawnDelay
	}
	return nil
}

func (p *Playing) updateRespawning() {
	p.respawnTimer -= p.dt
	if p.respawnTimer > 0 {
		return
	}

	for _, c := range p.pending {
		if c.OutOfLives() {
			continue
		}
		x, y := p.spawnPoint(p.slotOf(c))
		c.Respawn(x, y)
		c.GrantInvincibility()
	}
	p.pending = p.pending[:0]

	if p.allOutOfLives() {
		p.state = state.StateGameOver
		log.Printf("Game over")
		// Auto-save recording on game over
		p.saveRecording()
		return
	}
	p.state = state.StatePlaying
}

func (p *Playing) allOutOfLives() bool {
	for _, c := range p.level.Characters() {
		if !c.OutOfLives() {
			return false
		}
	}
	return true
}

// pollReload applies a config change reported by the watcher, if any
func (p *Playing) pollReload() {
	if p.changes == nil || p.loader == nil || p.replayer != nil {
		return
	}
	select {
	case name, ok := <-p.changes:
		if !ok {
			p.changes = nil
			return
		}
		if err := p.reload(); err != nil {
			log.Printf("Reload after %s failed: %v", name, err)
			return
		}
		log.Printf("Reloaded config after change to %s", name)
	default:
	}
}

func (p *Playing) reload() error {
	cfg, err := p.loader.LoadAll()
	if err != nil {
		return err
	}
	tuning, err := cfg.Tuning.EntityTuning()
	if err != nil {
		return err
	}
	stageCfg, err := p.loader.LoadStage(p.stageName)
	if err != nil {
		return err
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return err
	}

	p.config = cfg
	p.tuning = tuning
	p.stageCfg = stageCfg
	p.stage = stage
	p.tileSize = stage.TileSize
	p.restart()
	return nil
}

// recordedStage names the stage in recordings so a replay can reload it
func (p *Playing) recordedStage() string {
	if p.stageName != "" {
		return p.stageName
	}
	return p.stageCfg.ID
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	if err := p.buildLevel(); err != nil {
		log.Printf("Failed to restart: %v", err)
		return
	}

	// Restart recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.recordedStage(), p.players)
		log.Printf("Recording restarted")
	}
}

// State returns the current flow state
func (p *Playing) State() state.GameState { return p.state }

// Level returns the running level
func (p *Playing) Level() *system.Level { return p.level }

// camera returns the top-left world pixel shown on screen, following the
// first character still in the game
func (p *Playing) camera() (int, int) {
	chars := p.level.Characters()
	if len(chars) == 0 {
		return 0, 0
	}
	focus := chars[0]
	for _, c := range chars {
		if !c.OutOfLives() {
			focus = c
			break
		}
	}

	b := focus.Body()
	camX := int(b.CenterX()) - p.screenW/2
	camY := int(b.Y+b.H/2) - p.screenH/2

	// Clamp camera to stage bounds
	maxCamX := p.stage.Width*p.tileSize - p.screenW
	maxCamY := p.stage.Height*p.tileSize - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	// Draw world
	p.drawTiles(screen, camX, camY)
	p.drawPowerUps(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawCharacters(screen, camX, camY)

	// Draw UI - always on top
	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			tile := p.stage.GetTile(tx, ty)

			var c color.Color
			switch tile.Type {
			case entity.TileGround:
				c = colorGround
			case entity.TileWall:
				c = colorWall
			case entity.TileQuicksand:
				c = colorQuicksand
			default:
				continue
			}

			x := float64(tx*p.tileSize - camX)
			y := float64(ty*p.tileSize - camY)
			ebitenutil.DrawRect(screen, x, y, float64(p.tileSize), float64(p.tileSize), c)
		}
	}
}

func (p *Playing) drawPowerUps(screen *ebiten.Image, camX, camY int) {
	fill := parseColor(p.config.Entities.PowerUp.Sprite.Color)
	for _, pu := range p.level.PowerUps() {
		c := fill
		if pu.State() == entity.Glowing {
			c.A = 160
		}
		drawRect(screen, pu.Body().Rect(), camX, camY, c)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY int) {
	for _, e := range p.level.Enemies() {
		if !e.IsAlive() {
			continue
		}
		var c color.NRGBA
		if ecfg, ok := p.config.Entities.Enemies[e.EnemyType]; ok {
			c = parseColor(ecfg.Sprite.Color)
		}
		if e.State() == entity.EnemyHurt {
			c = color.NRGBA{255, 255, 255, 255}
		}
		drawRect(screen, e.Body().Rect(), camX, camY, c)
	}
}

func (p *Playing) drawCharacters(screen *ebiten.Image, camX, camY int) {
	ents := p.config.Entities
	for _, ch := range p.level.Characters() {
		if ch.IsDead() {
			continue
		}
		c := parseColor(ents.Character.Color)
		if s, ok := ch.Sprite().(*system.SpriteAnimator); ok {
			if !s.Visible() {
				continue
			}
			c.A = uint8(s.Alpha() * 255)
		}
		drawRect(screen, ch.Body().Rect(), camX, camY, c)

		if sw := ch.Sword(); sw != nil && sw.Visible() {
			sc := parseColor(ents.Sword.Color)
			if !sw.Striking() {
				sc.A = 128
			}
			drawRect(screen, sw.Body().Rect(), camX, camY, sc)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	barW := 100.0
	barH := 6.0

	for i, ch := range p.level.Characters() {
		barX := 10.0 + float64(i)*(barW+60)
		barY := float64(p.screenH - 30)

		// Health
		ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
		ebitenutil.DrawRect(screen, barX, barY, barW*ratio(ch.HP(), ch.MaxHP()), barH, colorHealthFG)

		// Mana
		ebitenutil.DrawRect(screen, barX, barY+barH+2, barW, barH, colorHealthBG)
		ebitenutil.DrawRect(screen, barX, barY+barH+2, barW*ratio(ch.Mana(), ch.MaxMana()), barH, colorManaFG)

		text := fmt.Sprintf("P%d x%d %s", i+1, ch.Lives(), ch.CurrentPower())
		if ch.PoweredUp() {
			text += "+"
		}
		ebitenutil.DebugPrintAt(screen, text, int(barX), int(barY)-16)
	}

	// Controls
	debugText := "Arrows: Move | Z: Jump | X: Slash | ESC: Pause"
	if p.replayer != nil {
		debugText = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "GAME OVER\n\nPress Z to restart"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func drawRect(screen *ebiten.Image, r entity.Rect, camX, camY int, c color.Color) {
	ebitenutil.DrawRect(screen, r.X-float64(camX), r.Y-float64(camY), r.W, r.H, c)
}

func ratio(v, limit int) float64 {
	if limit <= 0 || v <= 0 {
		return 0
	}
	if v >= limit {
		return 1
	}
	return float64(v) / float64(limit)
}

// parseColor reads a "#rrggbb" fill. Malformed values draw magenta.
func parseColor(hex string) color.NRGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{255, 0, 255, 255}
	}
	return color.NRGBA{r, g, b, 255}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

var _ scene.Sized = (*Playing)(nil)

// Layout returns the configured screen dimensions (implements scene.Sized)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
