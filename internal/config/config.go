// Package config provides YAML-based configuration loading for the game.
package config

// GameConfig contains all tunable parameters for a session.
type GameConfig struct {
	Game    GameplayConfig `yaml:"game"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Icons   IconsConfig    `yaml:"icons"`
}

// GameplayConfig defines timing and grid parameters.
type GameplayConfig struct {
	TickMS        int `yaml:"tick_ms"`        // Simulation tick interval
	HideMS        int `yaml:"hide_ms"`        // How long a collided line stays hidden
	MinColumns    int `yaml:"min_columns"`    // Lower bound on grid width
	InitialLength int `yaml:"initial_length"` // Starting snake length
	SpawnAttempts int `yaml:"spawn_attempts"` // Food rejection-sampling cap
}

// ScoringConfig defines the scoring policy.
type ScoringConfig struct {
	LinesPerPoint int  `yaml:"lines_per_point"` // PointsPerFood = max(1, lines/LinesPerPoint)
	CommentBonus  bool `yaml:"comment_bonus"`   // Award bonus for comment collisions
}

// IconsConfig defines the glyphs used for game elements.
type IconsConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// HeadRune returns the head glyph as a rune.
func (i IconsConfig) HeadRune() rune { return firstRune(i.Head, '@') }

// BodyRune returns the body glyph as a rune.
func (i IconsConfig) BodyRune() rune { return firstRune(i.Body, 'o') }

// FoodRune returns the food glyph as a rune.
func (i IconsConfig) FoodRune() rune { return firstRune(i.Food, '*') }

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Normalize clamps nonsensical values back to usable defaults.
func (c *GameConfig) Normalize() {
	def := Default()
	if c.Game.TickMS <= 0 {
		c.Game.TickMS = def.Game.TickMS
	}
	if c.Game.HideMS <= 0 {
		c.Game.HideMS = def.Game.HideMS
	}
	if c.Game.MinColumns <= 0 {
		c.Game.MinColumns = def.Game.MinColumns
	}
	if c.Game.InitialLength < 1 {
		c.Game.InitialLength = def.Game.InitialLength
	}
	if c.Game.SpawnAttempts < 1 {
		c.Game.SpawnAttempts = def.Game.SpawnAttempts
	}
	if c.Scoring.LinesPerPoint <= 0 {
		c.Scoring.LinesPerPoint = def.Scoring.LinesPerPoint
	}
}
