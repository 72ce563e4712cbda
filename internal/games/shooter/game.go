// Package shooter implements the meteor shooter simulation: a ship dodges and
// shoots falling meteors while difficulty escalates with score.
package shooter

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Phase is the top-level run state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// activeConfig is the validated configuration new games start with, set via CLI.
var activeConfig = config.DefaultShooterConfig()

// SetConfig validates cfg and makes it the configuration for games created
// afterwards.
func SetConfig(cfg config.ShooterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	activeConfig = cfg
	return nil
}

// Game owns every entity collection and the run state.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	spawner *Spawner
	bounds  core.Rect

	// Run state
	now              time.Duration
	phase            Phase
	score            int
	lastSurvivalTick time.Duration
	quit             bool

	player      *Player
	projectiles []*Projectile
	hazards     []*Hazard
	effects     []*Effect
	decorations []*Decoration

	sounds []core.Sound
}

// New creates a game using the active configuration.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
// The configuration is assumed to be valid.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Meteor Shooter"
}

// SetLogger sets the logger for lifecycle and invariant messages.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset sizes the play area, seeds the RNG and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.bounds = core.NewRect(0, 0, runtime.ScreenW, runtime.ScreenH)
	g.spawner = NewSpawner(runtime.Seed, g.cfg.Hazards)
	g.quit = false
	g.newRun()
}

// newRun discards all run state and builds a fresh player and background.
func (g *Game) newRun() {
	g.now = 0
	g.phase = PhasePlaying
	g.score = 0
	g.lastSurvivalTick = 0

	g.spawner.Reset()
	g.player = newPlayer(
		core.V(float64(g.bounds.W)/2, float64(g.bounds.H)/2),
		g.cfg.Player.Speed,
		g.cfg.Player.Lives,
		g.cfg.Difficulty.WeaponCooldown(1),
	)
	g.projectiles = nil
	g.hazards = nil
	g.effects = nil
	g.decorations = g.spawner.Decorations(g.cfg.Decorations.Count, g.bounds)
}

// Step advances the simulation by dt.
// Quit is honoured first in any phase. In GameOver the world is frozen and
// only Restart has an effect.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.sounds = nil

	if g.quit || in.Has(core.ActionQuit) {
		g.quit = true
		return g.result()
	}
	if g.player == nil {
		return g.result()
	}

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.logger.Info("restart", "previous_score", g.score)
			g.newRun()
		}
		return g.result()
	}

	g.advance(in, dt)
	return g.result()
}

// advance runs one Playing step in fixed phase order.
func (g *Game) advance(in core.InputFrame, dt time.Duration) {
	prevScore := g.score
	prevLevel := g.level()

	// elapsed time
	dt = g.clampDelta(dt)
	g.now += dt
	secs := dt.Seconds()

	// steering
	g.player.Steer(in.Movement(), secs, g.bounds)

	// weapon
	if g.player.TryFire(g.now, in.Has(core.ActionFire)) {
		g.projectiles = append(g.projectiles, newProjectile(g.player.Muzzle(), g.cfg.Weapon.ProjectileSpeed))
		g.emit(core.SoundShot)
	}

	// difficulty
	params := g.cfg.Difficulty.Params(g.score)
	g.player.SetCooldown(params.WeaponCooldown)

	// survival points
	g.accrueSurvival()

	// spawning
	if h := g.spawner.Update(g.now, params, g.bounds); h != nil {
		g.hazards = append(g.hazards, h)
	}

	// entity updates
	ctx := StepContext{Now: g.now, Level: params.Level, Bounds: g.bounds}
	g.forEachEntity(func(e Entity) {
		e.Update(secs, ctx)
	})

	// collisions
	g.apply(Resolve(g.player, g.hazards, g.projectiles, g.cfg.Scoring.DestructionPoints))

	// pruning
	g.projectiles = prune(g.projectiles)
	g.hazards = prune(g.hazards)
	g.effects = prune(g.effects)

	g.checkInvariants(prevScore)

	if level := g.level(); level != prevLevel {
		g.logger.Debug("level up", "level", level, "score", g.score)
	}
}

// clampDelta bounds the elapsed time to [0, MaxFrameDelta] so a stalled
// frame cannot move anything far enough to tunnel through another entity.
func (g *Game) clampDelta(dt time.Duration) time.Duration {
	maxDelta := time.Duration(g.cfg.Timing.MaxFrameDeltaMs) * time.Millisecond
	return max(0, min(dt, maxDelta))
}

// accrueSurvival awards points once per whole second since the last award.
// The award timestamp advances by exactly one second per boundary.
func (g *Game) accrueSurvival() {
	for g.now-g.lastSurvivalTick >= time.Second {
		g.score += g.cfg.Scoring.SurvivalPoints
		g.lastSurvivalTick += time.Second
	}
}

// apply mutates the world according to a collision outcome.
func (g *Game) apply(out Outcome) {
	if out.Empty() {
		return
	}

	for _, i := range out.DestroyedHazards {
		g.hazards[i].destroy()
	}
	for _, j := range out.SpentProjectiles {
		g.projectiles[j].destroy()
	}

	g.score += out.ScoreDelta
	for _, pos := range out.Effects {
		g.effects = append(g.effects, newEffect(pos, g.cfg.Effects.AnimationFPS))
		g.emit(core.SoundExplosion)
	}

	for range out.Damage {
		if g.player.TakeDamage() {
			g.emit(core.SoundDamage)
		}
	}

	if !g.player.Alive() && g.phase == PhasePlaying {
		g.phase = PhaseGameOver
		g.emit(core.SoundGameOver)
		g.logger.Info("game over", "score", g.score, "level", g.level(), "elapsed", g.now)
	}
}

// forEachEntity visits every entity in draw order.
func (g *Game) forEachEntity(fn func(Entity)) {
	for _, d := range g.decorations {
		fn(d)
	}
	for _, h := range g.hazards {
		fn(h)
	}
	for _, p := range g.projectiles {
		fn(p)
	}
	for _, e := range g.effects {
		fn(e)
	}
	fn(g.player)
}

func (g *Game) entityCount() int {
	return len(g.decorations) + len(g.hazards) + len(g.projectiles) + len(g.effects) + 1
}

func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

// level is derived from the score on demand and never stored.
func (g *Game) level() int {
	return g.cfg.Difficulty.LevelFor(g.score)
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Now returns the simulation time of the current run.
func (g *Game) Now() time.Duration {
	return g.now
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{Quit: g.quit}
	}
	return core.GameState{
		Score:    g.score,
		Level:    g.level(),
		Lives:    g.player.Lives(),
		GameOver: g.phase == PhaseGameOver,
		Quit:     g.quit,
	}
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
