package core

// Sound names a fire-and-forget audio trigger emitted by the simulation.
// The audio adapter decides how (or whether) to play it.
type Sound string

const (
	SoundShot      Sound = "shot"
	SoundExplosion Sound = "explosion"
	SoundDamage    Sound = "damage"
	SoundGameOver  Sound = "gameOver"
)

// Sounds lists every trigger the simulation can emit.
var Sounds = []Sound{SoundShot, SoundExplosion, SoundDamage, SoundGameOver}
