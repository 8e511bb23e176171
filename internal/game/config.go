package game

// Grid dimensions (in cells).
const (
	GridCols = 30
	GridRows = 20
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Frame/logic timing. The render loop runs at FPS; game logic advances on
// ticks throttled to the session speed (ticks per second).
const (
	FPS            = 60
	BaseGameSpeed  = 10
	MaxGameSpeed   = 30
	SpeedIncrement = 2
	ScoreThreshold = 50 // points per speed bump
)

// Obstacles mode.
const (
	ObstacleCount = 20
	ObstacleBonus = 2 // extra food score in obstacles mode
)

// Power-up system. Intervals and durations are in logic ticks.
const (
	PowerUpCount         = 3 // max simultaneously spawned, uncollected
	PowerUpSpawnInterval = 60
	PowerUpDuration      = 80
	PowerUpScoreBonus    = 5
	ShrinkSegments       = 2
	ShrinkPenalty        = 5
	MagnetRange          = 5 // half-width of the biased placement window
)

// Snake.
const (
	MinSnakeLen   = 3
	SpeedBoostAdd = 5
)

// Particles. Speeds are in grid cells per second.
const (
	ParticleCount    = 12
	ParticleSpeed    = 6.0
	ParticleLifetime = 0.5 // seconds
	MaxParticles     = 2048
)

// Scoring shell.
const (
	MaxScores  = 5
	NameMaxLen = 15
)
