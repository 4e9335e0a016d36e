package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"quiz-session-service/internal/bank"
	"quiz-session-service/internal/generator"
	"quiz-session-service/internal/models"
	"quiz-session-service/internal/session"
)

// newTestService builds a service with no loading delay and a tick
// interval long enough that the countdown never fires on its own.
func newTestService() *SessionService {
	gen := generator.NewWithSource(bank.Default(), rand.NewSource(42))
	return NewSessionService(gen, nil, 0, time.Hour)
}

func validConfig() models.QuizConfig {
	return models.QuizConfig{
		ExamType:     "Informatica",
		Topics:       []string{"Programmazione", "Database"},
		NumQuestions: 5,
		Difficulty:   "misto",
		TimeLimitMin: 10,
	}
}

func TestStartQuizProducesRunningSnapshot(t *testing.T) {
	s := newTestService()
	defer s.Restart()

	snap, err := s.StartQuiz(validConfig())
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if snap.Screen != session.ScreenRunning {
		t.Errorf("Expected running screen, got %q", snap.Screen)
	}
	if snap.TotalQuestions != 5 {
		t.Errorf("Expected 5 questions, got %d", snap.TotalQuestions)
	}
	if snap.Question == nil || len(snap.Question.Options) != models.OptionCount {
		t.Errorf("Snapshot is missing the current question view: %+v", snap.Question)
	}
	if snap.RemainingSeconds != 600 {
		t.Errorf("Expected 600 remaining seconds, got %d", snap.RemainingSeconds)
	}
	if snap.SelectedOption != session.Unanswered {
		t.Errorf("Fresh question must be unanswered, got %d", snap.SelectedOption)
	}
}

func TestStartQuizRejectsInvalidConfigAndKeepsSession(t *testing.T) {
	s := newTestService()
	defer s.Restart()

	if _, err := s.StartQuiz(validConfig()); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	before, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	bad := validConfig()
	bad.ExamType = ""
	_, err = s.StartQuiz(bad)
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected validation error, got %v", err)
	}

	after, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if after.SessionID != before.SessionID {
		t.Error("Rejected configuration must not replace the live session")
	}
}

func TestFullFlowThroughFinish(t *testing.T) {
	s := newTestService()
	defer s.Restart()

	if _, err := s.StartQuiz(validConfig()); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}

	// Next without an answer is rejected.
	if _, err := s.Next(); !errors.Is(err, session.ErrUnanswered) {
		t.Fatalf("Expected ErrUnanswered, got %v", err)
	}

	for i := 0; i < 5; i++ {
		if _, err := s.SelectAnswer(0); err != nil {
			t.Fatalf("SelectAnswer failed on question %d: %v", i, err)
		}
		if i < 4 {
			if _, err := s.Next(); err != nil {
				t.Fatalf("Next failed on question %d: %v", i, err)
			}
		}
	}

	result, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if result.Total != 5 || result.Answered != 5 {
		t.Errorf("Expected 5/5 answered, got %d/%d", result.Answered, result.Total)
	}
	if result.FinalScore < 0 {
		t.Errorf("Score must never be negative, got %d", result.FinalScore)
	}

	stored, err := s.Results()
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if stored.SessionID != result.SessionID {
		t.Error("Stored result does not match the finish result")
	}

	// The session sits on the results screen; intents for running are
	// rejected.
	if _, err := s.SelectAnswer(0); !errors.Is(err, session.ErrWrongScreen) {
		t.Errorf("Expected ErrWrongScreen after finish, got %v", err)
	}
}

func TestTimeoutForcesResults(t *testing.T) {
	s := newTestService()
	defer s.Restart()

	if _, err := s.StartQuiz(validConfig()); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}

	// Drain the countdown by ticking directly instead of waiting.
	s.mu.Lock()
	s.current.RemainingSeconds = 1
	s.mu.Unlock()
	s.tick()

	result, err := s.Results()
	if err != nil {
		t.Fatalf("Results failed after timeout: %v", err)
	}
	if result.CompletionType != session.CompletionTimeout {
		t.Errorf("Expected timeout completion, got %q", result.CompletionType)
	}
	if result.Answered != 0 {
		t.Errorf("Expected no answered questions, got %d", result.Answered)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Screen != session.ScreenResults {
		t.Errorf("Expected results screen, got %q", snap.Screen)
	}
}

func TestRestartDiscardsEverything(t *testing.T) {
	s := newTestService()

	if _, err := s.StartQuiz(validConfig()); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if _, err := s.SelectAnswer(0); err != nil {
		t.Fatalf("SelectAnswer failed: %v", err)
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession after restart, got %v", err)
	}
	if _, err := s.Results(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected no stored results after restart, got %v", err)
	}
	if s.countdown != nil {
		t.Error("Restart must stop and release the countdown")
	}

	// A new attempt starts from scratch.
	snap, err := s.StartQuiz(validConfig())
	if err != nil {
		t.Fatalf("StartQuiz after restart failed: %v", err)
	}
	defer s.Restart()
	if snap.Score != 0 || snap.Progress != 0 {
		t.Errorf("New session must start clean: score=%d progress=%f", snap.Score, snap.Progress)
	}
}

func TestPauseResumeRequireSession(t *testing.T) {
	s := newTestService()
	if err := s.Pause(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}

	if _, err := s.StartQuiz(validConfig()); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	defer s.Restart()
	if err := s.Pause(); err != nil {
		t.Errorf("Pause failed: %v", err)
	}
	if err := s.Resume(); err != nil {
		t.Errorf("Resume failed: %v", err)
	}
}

func TestEvaluateSubmission(t *testing.T) {
	quiz := NewQuizService(bank.Default(), generator.NewWithSource(bank.Default(), rand.NewSource(1)))

	questions := []models.Question{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 0, Difficulty: "facile"},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 1, Difficulty: "medio"},
		{Prompt: "q3", Options: []string{"a", "b", "c", "d"}, Correct: 2, Difficulty: "difficile"},
		{Prompt: "q4", Options: []string{"a", "b", "c", "d"}, Correct: 3, Difficulty: "difficile"},
	}
	answers := map[string]string{
		"0": "0", // correct
		"1": "0", // wrong
		"2": "2", // correct
	}

	result := quiz.EvaluateSubmission(questions, answers, 120)
	if result.Correct != 2 || result.Answered != 3 || result.Total != 4 {
		t.Errorf("Expected 2 correct of 3 answered of 4, got %d/%d/%d", result.Correct, result.Answered, result.Total)
	}
	if result.Percentage != 50 {
		t.Errorf("Expected 50%%, got %d", result.Percentage)
	}
	if result.PerformanceLevel != "weak" {
		t.Errorf("50%% must land in the weak band, got %q", result.PerformanceLevel)
	}
	if result.DifficultyStats["easy"] != 1 || result.DifficultyStats["hard"] != 1 {
		t.Errorf("Unexpected difficulty stats: %v", result.DifficultyStats)
	}
	if result.TimeSpent != 120 {
		t.Errorf("Expected timeSpent 120, got %d", result.TimeSpent)
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected study recommendations")
	}
}
