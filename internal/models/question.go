package models

import "strings"

const OptionCount = 4

type Question struct {
	ID          string   `bson:"_id,omitempty" json:"id,omitempty"`
	Prompt      string   `bson:"prompt" json:"question"`
	Options     []string `bson:"options" json:"options"`
	Correct     int      `bson:"correct" json:"correct"`
	Explanation string   `bson:"explanation" json:"explanation"`
	Difficulty  string   `bson:"difficulty" json:"difficulty"`
	ExamType    string   `bson:"exam_type,omitempty" json:"examType,omitempty"`
	Topic       string   `bson:"topic,omitempty" json:"topic,omitempty"`
}

// IsValid reports whether the question has exactly four options and a
// correct index pointing at one of them.
func (q *Question) IsValid() bool {
	return len(q.Options) == OptionCount && q.Correct >= 0 && q.Correct < OptionCount
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// DifficultyMultipliers defines score multipliers per configured difficulty.
var DifficultyMultipliers = map[Difficulty]float64{
	DifficultyEasy:   1.0,
	DifficultyMedium: 1.2,
	DifficultyHard:   1.5,
	DifficultyMixed:  1.3,
}

// difficultyAliases maps the Italian vocabulary used by the question bank
// onto the canonical enum.
var difficultyAliases = map[string]Difficulty{
	"facile":    DifficultyEasy,
	"medio":     DifficultyMedium,
	"difficile": DifficultyHard,
	"misto":     DifficultyMixed,
}

// NormalizeDifficulty resolves a difficulty string (canonical or Italian
// alias, any case) to the canonical enum. Unknown values fall back to mixed.
func NormalizeDifficulty(s string) Difficulty {
	v := strings.ToLower(strings.TrimSpace(s))
	switch Difficulty(v) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return Difficulty(v)
	}
	if d, ok := difficultyAliases[v]; ok {
		return d
	}
	return DifficultyMixed
}

// MultiplierFor returns the score multiplier for a difficulty string.
func MultiplierFor(s string) float64 {
	return DifficultyMultipliers[NormalizeDifficulty(s)]
}
