package bank

import (
	"testing"

	"quiz-session-service/internal/models"
)

func TestQuestionsForCaseInsensitive(t *testing.T) {
	b := Default()

	exact := b.QuestionsFor("Informatica", []string{"Programmazione"})
	if len(exact) == 0 {
		t.Fatal("Expected questions for exact topic match")
	}

	lower := b.QuestionsFor("informatica", []string{"programmazione"})
	if len(lower) != len(exact) {
		t.Errorf("Case-insensitive lookup returned %d questions, want %d", len(lower), len(exact))
	}

	none := b.QuestionsFor("Informatica", []string{"Letteratura"})
	if len(none) != 0 {
		t.Errorf("Expected no questions for unknown topic, got %d", len(none))
	}
}

func TestQuestionsForDuplicateTopics(t *testing.T) {
	b := Default()
	single := b.QuestionsFor("Informatica", []string{"Database"})
	double := b.QuestionsFor("Informatica", []string{"Database", "database"})
	if len(double) != 2*len(single) {
		t.Errorf("Duplicate topics should duplicate candidates: got %d, want %d", len(double), 2*len(single))
	}
}

func TestSeedBankIsWellFormed(t *testing.T) {
	b := Default()
	if b.Size() == 0 {
		t.Fatal("Seed bank is empty")
	}
	for _, q := range b.Questions() {
		if !q.IsValid() {
			t.Errorf("Seed question %q has %d options, correct=%d", q.Prompt, len(q.Options), q.Correct)
		}
		if q.ExamType == "" || q.Topic == "" {
			t.Errorf("Seed question %q is missing exam type or topic", q.Prompt)
		}
	}
}

func TestTopics(t *testing.T) {
	topics := Default().Topics()
	if len(topics["Informatica"]) != 3 {
		t.Errorf("Expected 3 Informatica topics, got %v", topics["Informatica"])
	}
	if len(topics["Scienze"]) != 2 {
		t.Errorf("Expected 2 Scienze topics, got %v", topics["Scienze"])
	}
}

func TestFromQuestions(t *testing.T) {
	questions := []models.Question{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 0, ExamType: "Informatica", Topic: "Reti"},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 1, ExamType: "Informatica", Topic: "Reti"},
		{Prompt: "q3", Options: []string{"a", "b", "c", "d"}, Correct: 2, ExamType: "Matematica", Topic: "Analisi"},
	}
	b := FromQuestions(questions)
	if got := len(b.QuestionsFor("informatica", []string{"reti"})); got != 2 {
		t.Errorf("Expected 2 grouped questions, got %d", got)
	}
	if b.Size() != 3 {
		t.Errorf("Expected size 3, got %d", b.Size())
	}
}
