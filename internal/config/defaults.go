package config

import (
	_ "embed"
)

//go:embed defaults/codesnake.yaml
var defaultYAML []byte

// Default returns the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		Game: GameplayConfig{
			TickMS:        150,
			HideMS:        1000,
			MinColumns:    40,
			InitialLength: 3,
			SpawnAttempts: 100,
		},
		Scoring: ScoringConfig{
			LinesPerPoint: 10,
			CommentBonus:  true,
		},
		Icons: IconsConfig{
			Head: "@",
			Body: "o",
			Food: "*",
		},
	}
}
