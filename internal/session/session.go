// Package session implements the quiz attempt state machine: screen
// transitions, answer selection, scoring and finalization.
package session

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"quiz-session-service/internal/models"
)

// Screen is the state of the session machine.
type Screen string

const (
	ScreenSetup   Screen = "setup"
	ScreenLoading Screen = "loading"
	ScreenRunning Screen = "running"
	ScreenResults Screen = "results"
)

// Unanswered marks a question with no recorded selection.
const Unanswered = -1

// NoAnswerText is the review text for questions left unanswered.
const NoAnswerText = "No answer"

const (
	CompletionManual  = "manual"
	CompletionTimeout = "timeout"
)

var (
	ErrWrongScreen   = errors.New("operation not allowed in current screen")
	ErrOptionRange   = errors.New("option index out of range")
	ErrUnanswered    = errors.New("current question has no recorded answer")
	ErrNotLastOne    = errors.New("finish is only available on the last question")
	ErrNoQuestions   = errors.New("question set is empty")
	ErrNotConfigured = errors.New("session has no validated configuration")
)

// Session owns one quiz attempt from setup to results. It is a plain state
// value: all mutations happen through its methods in response to discrete
// events, and the caller serializes access.
type Session struct {
	ID               string
	Config           models.QuizConfig
	Questions        []models.Question
	Answers          []int
	Score            int
	RemainingSeconds int
	CurrentIndex     int
	StartedAt        time.Time

	screen     Screen
	configured bool
	scored     []bool
	now        func() time.Time
}

// New creates a session on the setup screen.
func New() *Session {
	return NewWithClock(time.Now)
}

// NewWithClock creates a session with an injected clock, for deterministic
// scoring in tests.
func NewWithClock(now func() time.Time) *Session {
	return &Session{
		ID:     uuid.NewString(),
		screen: ScreenSetup,
		now:    now,
	}
}

func (s *Session) Screen() Screen { return s.screen }

// Configure validates and stores the quiz configuration. Rejected
// configurations leave the session on the setup screen with no partial
// state.
func (s *Session) Configure(cfg models.QuizConfig) error {
	if s.screen != ScreenSetup {
		return ErrWrongScreen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.Config = cfg
	s.configured = true
	return nil
}

// BeginLoading moves setup -> loading. Generation happens while loading;
// once started it cannot be cancelled.
func (s *Session) BeginLoading() error {
	if s.screen != ScreenSetup {
		return ErrWrongScreen
	}
	if !s.configured {
		return ErrNotConfigured
	}
	s.screen = ScreenLoading
	return nil
}

// Start installs the generated question set and moves loading -> running.
// The question set is fixed from here on.
func (s *Session) Start(questions []models.Question) error {
	if s.screen != ScreenLoading {
		return ErrWrongScreen
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.Questions = questions
	s.Answers = make([]int, len(questions))
	for i := range s.Answers {
		s.Answers[i] = Unanswered
	}
	s.scored = make([]bool, len(questions))
	s.Score = 0
	s.CurrentIndex = 0
	s.RemainingSeconds = s.Config.TotalSeconds()
	s.StartedAt = s.now()
	s.screen = ScreenRunning
	return nil
}

// SelectResult reports the outcome of one answer selection.
type SelectResult struct {
	IsCorrect      bool `json:"isCorrect"`
	FirstSelection bool `json:"firstSelection"`
	PointsEarned   int  `json:"pointsEarned"`
	TotalScore     int  `json:"totalScore"`
}

// SelectAnswer records the option for the current question, overwriting
// any previous selection. Scoring runs only on the first selection per
// question: later changes update the stored answer but never the score,
// which keeps the score monotonically non-decreasing.
func (s *Session) SelectAnswer(option int) (*SelectResult, error) {
	if s.screen != ScreenRunning {
		return nil, ErrWrongScreen
	}
	if option < 0 || option >= models.OptionCount {
		return nil, ErrOptionRange
	}
	i := s.CurrentIndex
	first := !s.scored[i]
	s.Answers[i] = option

	result := &SelectResult{
		IsCorrect:      option == s.Questions[i].Correct,
		FirstSelection: first,
	}
	if first {
		s.scored[i] = true
		if result.IsCorrect {
			result.PointsEarned = s.pointsFor(i)
			s.Score += result.PointsEarned
		}
	}
	result.TotalScore = s.Score
	return result, nil
}

// pointsFor computes the award for a correct first answer on question i:
// round((base + speedBonus) * difficultyMultiplier). The per-question
// elapsed time is approximated from wall-clock time since start minus the
// budget of all preceding questions.
func (s *Session) pointsFor(i int) int {
	const base = 100.0
	budget := s.Config.PerQuestionBudget()
	elapsed := s.now().Sub(s.StartedAt).Seconds() - float64(i)*budget
	if elapsed < 0 {
		elapsed = 0
	}
	bonus := 0.0
	if budget > 0 {
		bonus = 50 - (elapsed/budget)*50
		if bonus < 0 {
			bonus = 0
		}
	}
	multiplier := models.MultiplierFor(s.Config.Difficulty)
	return int(math.Round((base + bonus) * multiplier))
}

// Next advances the cursor. It is rejected while the current question has
// no recorded answer.
func (s *Session) Next() error {
	if s.screen != ScreenRunning {
		return ErrWrongScreen
	}
	if s.Answers[s.CurrentIndex] == Unanswered {
		return ErrUnanswered
	}
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	}
	return nil
}

// Previous moves the cursor back, clamped at the first question.
func (s *Session) Previous() error {
	if s.screen != ScreenRunning {
		return ErrWrongScreen
	}
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	return nil
}

// OnLastQuestion reports whether the cursor sits on the final question.
func (s *Session) OnLastQuestion() bool {
	return len(s.Questions) > 0 && s.CurrentIndex == len(s.Questions)-1
}

// Finish is the explicit user action on the last question. It requires a
// recorded answer there, mirroring the condition on Next.
func (s *Session) Finish() (*models.QuizResult, error) {
	if s.screen != ScreenRunning {
		return nil, ErrWrongScreen
	}
	if !s.OnLastQuestion() {
		return nil, ErrNotLastOne
	}
	if s.Answers[s.CurrentIndex] == Unanswered {
		return nil, ErrUnanswered
	}
	return s.finalize(CompletionManual), nil
}

// Tick consumes one second of the countdown. When the clock reaches zero
// the session transitions to results regardless of unanswered questions;
// the returned result is non-nil exactly in that case.
func (s *Session) Tick() *models.QuizResult {
	if s.screen != ScreenRunning {
		return nil
	}
	if s.RemainingSeconds > 0 {
		s.RemainingSeconds--
	}
	if s.RemainingSeconds == 0 {
		return s.finalize(CompletionTimeout)
	}
	return nil
}

// finalize computes the result snapshot and moves to the results screen.
func (s *Session) finalize(completionType string) *models.QuizResult {
	correct, answered := 0, 0
	for i, q := range s.Questions {
		if s.Answers[i] == Unanswered {
			continue
		}
		answered++
		if s.Answers[i] == q.Correct {
			correct++
		}
	}
	total := len(s.Questions)
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(correct) / float64(total)))
	}

	result := &models.QuizResult{
		SessionID:       s.ID,
		Correct:         correct,
		Answered:        answered,
		Total:           total,
		Percentage:      pct,
		FinalScore:      s.Score,
		TimeUsedSeconds: s.Config.TotalSeconds() - s.RemainingSeconds,
		Tier:            models.TierForPercentage(pct),
		CompletionType:  completionType,
		Review:          s.buildReview(),
		CompletedAt:     s.now(),
	}
	s.screen = ScreenResults
	return result
}

// buildReview produces one row per question unconditionally.
func (s *Session) buildReview() []models.ReviewRow {
	rows := make([]models.ReviewRow, len(s.Questions))
	for i, q := range s.Questions {
		row := models.ReviewRow{
			Index:        i,
			Prompt:       q.Prompt,
			CorrectText:  q.Options[q.Correct],
			SelectedText: NoAnswerText,
			Explanation:  q.Explanation,
		}
		if sel := s.Answers[i]; sel != Unanswered {
			row.Answered = true
			row.SelectedText = q.Options[sel]
			row.IsCorrect = sel == q.Correct
		}
		rows[i] = row
	}
	return rows
}

// Progress returns the answered fraction in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	answered := 0
	for _, a := range s.Answers {
		if a != Unanswered {
			answered++
		}
	}
	return float64(answered) / float64(len(s.Questions))
}
