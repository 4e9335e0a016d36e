package service

import (
	"math"
	"strconv"
	"time"

	"quiz-session-service/internal/bank"
	"quiz-session-service/internal/generator"
	"quiz-session-service/internal/models"
)

// QuizService backs the stateless HTTP boundary: one-shot generation and
// submission scoring, consistent with the session core's algorithms.
type QuizService struct {
	bank *bank.Bank
	gen  *generator.Generator
}

func NewQuizService(b *bank.Bank, gen *generator.Generator) *QuizService {
	return &QuizService{bank: b, gen: gen}
}

// Topics lists the available topics per exam type.
func (s *QuizService) Topics() map[string][]string {
	return s.bank.Topics()
}

// Generate produces a question list for an external caller.
func (s *QuizService) Generate(cfg models.QuizConfig) []models.Question {
	return s.gen.Generate(cfg)
}

// SubmissionResult is the computed outcome of a submitted quiz.
type SubmissionResult struct {
	Correct          int                 `json:"correct"`
	Answered         int                 `json:"answered"`
	Total            int                 `json:"total"`
	Percentage       int                 `json:"percentage"`
	PerformanceLevel string              `json:"performanceLevel"`
	Feedback         models.FeedbackTier `json:"feedback"`
	TimeSpent        int                 `json:"timeSpent"`
	DifficultyStats  map[string]int      `json:"difficultyStats"`
	Recommendations  []string            `json:"recommendations"`
	CompletedAt      int64               `json:"completedAt"`
}

// EvaluateSubmission scores a submitted answer map. Keys are question
// indexes as strings, values the selected option index as string, matching
// the submission endpoint contract. Percentage is computed against the
// full question count, like session finalization.
func (s *QuizService) EvaluateSubmission(questions []models.Question, answers map[string]string, timeSpent int) *SubmissionResult {
	correct, answered := 0, 0
	stats := map[string]int{
		string(models.DifficultyEasy):   0,
		string(models.DifficultyMedium): 0,
		string(models.DifficultyHard):   0,
	}
	hardCorrect, hardTotal := 0, 0

	for i, q := range questions {
		d := string(models.NormalizeDifficulty(q.Difficulty))
		if d == string(models.DifficultyHard) {
			hardTotal++
		}
		sel, ok := answers[strconv.Itoa(i)]
		if !ok {
			continue
		}
		option, err := strconv.Atoi(sel)
		if err != nil {
			continue
		}
		answered++
		if option == q.Correct {
			correct++
			stats[d]++
			if d == string(models.DifficultyHard) {
				hardCorrect++
			}
		}
	}

	pct := 0
	if len(questions) > 0 {
		pct = int(math.Round(100 * float64(correct) / float64(len(questions))))
	}
	tier := models.TierForPercentage(pct)

	return &SubmissionResult{
		Correct:          correct,
		Answered:         answered,
		Total:            len(questions),
		Percentage:       pct,
		PerformanceLevel: tier.Level,
		Feedback:         tier,
		TimeSpent:        timeSpent,
		DifficultyStats:  stats,
		Recommendations:  models.Recommendations(pct, hardCorrect, hardTotal),
		CompletedAt:      time.Now().Unix(),
	}
}
