// Package bank holds the static question bank the generator draws from.
// The core only ever reads it.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"quiz-session-service/internal/models"
)

// Bank is a read-only mapping from exam type and topic to questions.
// Lookups match exam types and topics case-insensitively.
type Bank struct {
	partitions []partition
}

type partition struct {
	ExamType  string
	Topic     string
	Questions []models.Question
}

// New builds a bank from examType -> topic -> questions data.
func New(data map[string]map[string][]models.Question) *Bank {
	b := &Bank{}
	for examType, topics := range data {
		for topic, questions := range topics {
			b.add(examType, topic, questions)
		}
	}
	return b
}

// Default returns the embedded seed bank.
func Default() *Bank {
	return New(seedData())
}

// LoadFile reads a bank from a JSON file shaped like the seed data.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var data map[string]map[string][]models.Question
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return New(data), nil
}

// FromQuestions groups a flat question list (e.g. loaded from the question
// store) into bank partitions by exam type and topic.
func FromQuestions(questions []models.Question) *Bank {
	b := &Bank{}
	for _, q := range questions {
		b.append(q.ExamType, q.Topic, q)
	}
	return b
}

func (b *Bank) add(examType, topic string, questions []models.Question) {
	for _, q := range questions {
		b.append(examType, topic, q)
	}
}

func (b *Bank) append(examType, topic string, q models.Question) {
	q.ExamType = examType
	q.Topic = topic
	for i := range b.partitions {
		p := &b.partitions[i]
		if strings.EqualFold(p.ExamType, examType) && strings.EqualFold(p.Topic, topic) {
			p.Questions = append(p.Questions, q)
			return
		}
	}
	b.partitions = append(b.partitions, partition{
		ExamType:  examType,
		Topic:     topic,
		Questions: []models.Question{q},
	})
}

// QuestionsFor collects every question whose exam type matches and whose
// topic matches any of the requested topics. Matching is case-insensitive
// exact; duplicate requested topics yield duplicate candidates.
func (b *Bank) QuestionsFor(examType string, topics []string) []models.Question {
	var out []models.Question
	for _, topic := range topics {
		for _, p := range b.partitions {
			if strings.EqualFold(p.ExamType, examType) && strings.EqualFold(p.Topic, topic) {
				out = append(out, p.Questions...)
			}
		}
	}
	return out
}

// Topics lists the available topics per exam type, for the topics endpoint.
func (b *Bank) Topics() map[string][]string {
	out := make(map[string][]string)
	for _, p := range b.partitions {
		out[p.ExamType] = append(out[p.ExamType], p.Topic)
	}
	return out
}

// Questions returns every question in the bank as a flat list.
func (b *Bank) Questions() []models.Question {
	var out []models.Question
	for _, p := range b.partitions {
		out = append(out, p.Questions...)
	}
	return out
}

// Size returns the total number of questions in the bank.
func (b *Bank) Size() int {
	n := 0
	for _, p := range b.partitions {
		n += len(p.Questions)
	}
	return n
}
