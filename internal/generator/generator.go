// Package generator builds the fixed question set for a quiz attempt.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"quiz-session-service/internal/bank"
	"quiz-session-service/internal/models"
)

// Generator selects and shuffles questions from a bank. It never fails to
// produce a quiz of the requested size: shortfalls are padded with
// synthesized placeholder questions.
type Generator struct {
	bank *bank.Bank
	rng  *rand.Rand
}

func New(b *bank.Bank) *Generator {
	return NewWithSource(b, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource builds a generator with an explicit random source, so
// selection is reproducible in tests.
func NewWithSource(b *bank.Bank, src rand.Source) *Generator {
	return &Generator{bank: b, rng: rand.New(src)}
}

// Generate returns exactly cfg.NumQuestions questions for the requested
// exam type and topics. Every returned question carries the configured
// difficulty tag; the tag does not alter content or correct answer.
func (g *Generator) Generate(cfg models.QuizConfig) []models.Question {
	topics := cfg.TrimmedTopics()
	candidates := g.bank.QuestionsFor(cfg.ExamType, topics)

	// A non-mixed difficulty keeps only matching bank questions, unless
	// the filter would empty the pool entirely.
	difficulty := models.NormalizeDifficulty(cfg.Difficulty)
	if difficulty != models.DifficultyMixed {
		filtered := filterByDifficulty(candidates, difficulty)
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	selected := g.shuffle(candidates)
	if len(selected) > cfg.NumQuestions {
		selected = selected[:cfg.NumQuestions]
	}
	for len(selected) < cfg.NumQuestions {
		selected = append(selected, g.synthesize(cfg, topics, len(selected)))
	}

	for i := range selected {
		selected[i].Difficulty = string(difficulty)
	}
	return selected
}

func filterByDifficulty(questions []models.Question, d models.Difficulty) []models.Question {
	var out []models.Question
	for _, q := range questions {
		if models.NormalizeDifficulty(q.Difficulty) == d {
			out = append(out, q)
		}
	}
	return out
}

// shuffle returns a uniformly shuffled copy, leaving the input untouched.
func (g *Generator) shuffle(questions []models.Question) []models.Question {
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// synthesize produces a templated placeholder question. This is the
// deliberate fallback for banks with too few matches, not an error path.
func (g *Generator) synthesize(cfg models.QuizConfig, topics []string, index int) models.Question {
	topicList := strings.Join(topics, ", ")
	return models.Question{
		Prompt: fmt.Sprintf("Domanda %d su %s - Argomento: %s", index+1, cfg.ExamType, topicList),
		Options: []string{
			fmt.Sprintf("Opzione A per %s", cfg.ExamType),
			fmt.Sprintf("Opzione B per %s", cfg.ExamType),
			fmt.Sprintf("Opzione C per %s", cfg.ExamType),
			fmt.Sprintf("Opzione D per %s", cfg.ExamType),
		},
		Correct: g.rng.Intn(models.OptionCount),
		Explanation: fmt.Sprintf(
			"Spiegazione dettagliata per la domanda %d relativa a %s nel contesto di %s. Questa domanda è stata generata automaticamente per completare il quiz richiesto.",
			index+1, topicList, cfg.ExamType),
		ExamType: cfg.ExamType,
	}
}
