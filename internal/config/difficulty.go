package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a flag value to a preset. Unknown and empty values
// fall back to fixed, which keeps the configured speed.
func ParseDifficulty(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p
	default:
		return DifficultyFixed
	}
}

// SpeedForPreset returns the move rate for a preset given the configured base speed.
func SpeedForPreset(preset DifficultyPreset, base int) int {
	switch preset {
	case DifficultyEasy:
		return max(1, base*2/3)
	case DifficultyNormal:
		return base
	case DifficultyHard:
		return base * 3 / 2
	default:
		return base
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed = SpeedForPreset(preset, cfg.Speed)
}
