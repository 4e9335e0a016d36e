package service

import (
	"errors"
	"sync"
	"time"

	"quiz-session-service/internal/event"
	"quiz-session-service/internal/generator"
	"quiz-session-service/internal/models"
	"quiz-session-service/internal/session"
)

var ErrNoSession = errors.New("no active session")

// SessionService owns the single live quiz session. Starting a new quiz
// replaces the previous session entirely; all intents are serialized
// through one mutex so the state machine itself stays single-threaded.
type SessionService struct {
	mu       sync.Mutex
	gen      *generator.Generator
	notifier event.Notifier

	loadingDelay time.Duration
	tickInterval time.Duration
	clock        func() time.Time

	current   *session.Session
	countdown *session.Countdown
	result    *models.QuizResult
}

func NewSessionService(gen *generator.Generator, notifier event.Notifier, loadingDelay, tickInterval time.Duration) *SessionService {
	if notifier == nil {
		notifier = event.NopNotifier{}
	}
	return &SessionService{
		gen:          gen,
		notifier:     notifier,
		loadingDelay: loadingDelay,
		tickInterval: tickInterval,
		clock:        time.Now,
	}
}

// QuestionView is the rendering snapshot of one question. The correct
// index and explanation are withheld until finalization.
type QuestionView struct {
	Index   int      `json:"index"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// Snapshot is the screen-state + data emitted for rendering after every
// intent.
type Snapshot struct {
	SessionID        string         `json:"sessionId"`
	Screen           session.Screen `json:"screen"`
	Question         *QuestionView  `json:"currentQuestion,omitempty"`
	QuestionNumber   int            `json:"questionNumber"`
	TotalQuestions   int            `json:"totalQuestions"`
	SelectedOption   int            `json:"selectedOption"`
	Progress         float64        `json:"progress"`
	Score            int            `json:"score"`
	RemainingSeconds int            `json:"remainingSeconds"`
	OnLastQuestion   bool           `json:"onLastQuestion"`
}

// StartQuiz validates the configuration, builds the question set and
// starts the countdown. A validation error leaves any previous session
// untouched. The loading phase is a cooperative delay that cannot be
// cancelled once started.
func (s *SessionService) StartQuiz(cfg models.QuizConfig) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := session.NewWithClock(s.clock)
	if err := candidate.Configure(cfg); err != nil {
		return nil, err
	}
	if err := candidate.BeginLoading(); err != nil {
		return nil, err
	}

	// The previous session is discarded only once the new request has
	// passed validation.
	s.teardownLocked()
	s.current = candidate
	s.notifier.Publish("quiz.session.created", map[string]any{
		"session_id": candidate.ID,
		"exam_type":  cfg.ExamType,
	})

	if s.loadingDelay > 0 {
		time.Sleep(s.loadingDelay)
	}
	questions := s.gen.Generate(cfg)
	if err := candidate.Start(questions); err != nil {
		return nil, err
	}
	s.countdown = session.NewCountdown(s.tickInterval, s.tick)
	s.notifier.Publish("quiz.session.started", map[string]any{
		"session_id": candidate.ID,
		"questions":  len(questions),
	})
	return s.snapshotLocked(), nil
}

// SelectAnswer records the option for the current question.
func (s *SessionService) SelectAnswer(option int) (*session.SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	result, err := s.current.SelectAnswer(option)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish("quiz.answer.selected", map[string]any{
		"session_id": s.current.ID,
		"question":   s.current.CurrentIndex,
		"correct":    result.IsCorrect,
	})
	return result, nil
}

func (s *SessionService) Next() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	if err := s.current.Next(); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

func (s *SessionService) Previous() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	if err := s.current.Previous(); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// Finish is the explicit user completion on the last question.
func (s *SessionService) Finish() (*models.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	result, err := s.current.Finish()
	if err != nil {
		return nil, err
	}
	s.completeLocked(result)
	return result, nil
}

// Pause suspends the countdown, e.g. when the client reports it is no
// longer observed. Time spent paused does not count against the quiz.
func (s *SessionService) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.countdown == nil {
		return ErrNoSession
	}
	s.countdown.Pause()
	s.notifier.Publish("quiz.session.paused", map[string]any{"session_id": s.current.ID})
	return nil
}

func (s *SessionService) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.countdown == nil {
		return ErrNoSession
	}
	s.countdown.Resume()
	s.notifier.Publish("quiz.session.resumed", map[string]any{"session_id": s.current.ID})
	return nil
}

// Restart discards the session and its timer entirely; the next quiz is
// rebuilt from scratch.
func (s *SessionService) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.notifier.Publish("quiz.session.restarted", map[string]any{"session_id": s.current.ID})
	}
	s.teardownLocked()
	return nil
}

// Snapshot returns the current rendering state.
func (s *SessionService) Snapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.snapshotLocked(), nil
}

// Results returns the finalized result once the session reached it.
func (s *SessionService) Results() (*models.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, ErrNoSession
	}
	return s.result, nil
}

// tick runs on the countdown goroutine once per second.
func (s *SessionService) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	if result := s.current.Tick(); result != nil {
		s.completeLocked(result)
		s.notifier.Publish("quiz.session.expired", map[string]any{"session_id": s.current.ID})
	}
}

func (s *SessionService) completeLocked(result *models.QuizResult) {
	s.result = result
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	s.notifier.Publish("quiz.session.completed", map[string]any{
		"session_id": result.SessionID,
		"score":      result.FinalScore,
		"percentage": result.Percentage,
	})
}

func (s *SessionService) teardownLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	s.current = nil
	s.result = nil
}

func (s *SessionService) snapshotLocked() *Snapshot {
	cur := s.current
	snap := &Snapshot{
		SessionID:        cur.ID,
		Screen:           cur.Screen(),
		TotalQuestions:   len(cur.Questions),
		SelectedOption:   session.Unanswered,
		Progress:         cur.Progress(),
		Score:            cur.Score,
		RemainingSeconds: cur.RemainingSeconds,
		OnLastQuestion:   cur.OnLastQuestion(),
	}
	if cur.Screen() == session.ScreenRunning {
		i := cur.CurrentIndex
		q := cur.Questions[i]
		snap.Question = &QuestionView{Index: i, Prompt: q.Prompt, Options: q.Options}
		snap.QuestionNumber = i + 1
		snap.SelectedOption = cur.Answers[i]
	}
	return snap
}
