package models

import (
	"fmt"
	"strings"
)

const (
	MinQuestions = 5
	MaxQuestions = 50
	MinMinutes   = 5
	MaxMinutes   = 60
)

// QuizConfig describes one quiz attempt. It is immutable once the session
// leaves the setup screen.
type QuizConfig struct {
	ExamType     string   `json:"examType"`
	Topics       []string `json:"topics"`
	NumQuestions int      `json:"numQuestions"`
	Difficulty   string   `json:"difficulty"`
	TimeLimitMin int      `json:"timeLimit"`
}

// ValidationError marks a rejected configuration. The session stays in
// setup when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (c *QuizConfig) Validate() error {
	if strings.TrimSpace(c.ExamType) == "" {
		return &ValidationError{Field: "examType", Reason: "must not be empty"}
	}
	if len(c.TrimmedTopics()) == 0 {
		return &ValidationError{Field: "topics", Reason: "must not be empty"}
	}
	if c.NumQuestions < MinQuestions || c.NumQuestions > MaxQuestions {
		return &ValidationError{
			Field:  "numQuestions",
			Reason: fmt.Sprintf("must be between %d and %d", MinQuestions, MaxQuestions),
		}
	}
	if c.TimeLimitMin < MinMinutes || c.TimeLimitMin > MaxMinutes {
		return &ValidationError{
			Field:  "timeLimit",
			Reason: fmt.Sprintf("must be between %d and %d minutes", MinMinutes, MaxMinutes),
		}
	}
	return nil
}

// TrimmedTopics returns the configured topics with whitespace trimmed and
// blanks removed. Duplicates are kept.
func (c *QuizConfig) TrimmedTopics() []string {
	var topics []string
	for _, t := range c.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// TotalSeconds returns the configured time limit in seconds.
func (c *QuizConfig) TotalSeconds() int {
	return c.TimeLimitMin * 60
}

// PerQuestionBudget returns the time budget for one question in seconds.
func (c *QuizConfig) PerQuestionBudget() float64 {
	if c.NumQuestions == 0 {
		return 0
	}
	return float64(c.TotalSeconds()) / float64(c.NumQuestions)
}
