package models

import "time"

// FeedbackTier is the qualitative band derived from the final percentage.
type FeedbackTier struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

var feedbackTiers = []struct {
	threshold int
	tier      FeedbackTier
}{
	{90, FeedbackTier{Level: "excellent", Message: "Excellent work! You have mastered these topics.", Color: "green"}},
	{75, FeedbackTier{Level: "good", Message: "Good result. A little more practice and you are there.", Color: "blue"}},
	{60, FeedbackTier{Level: "fair", Message: "Fair result. Review the questions you missed.", Color: "yellow"}},
	{40, FeedbackTier{Level: "weak", Message: "Weak result. Go back over the fundamentals.", Color: "orange"}},
}

// TierForPercentage maps a 0-100 percentage onto its feedback tier.
func TierForPercentage(pct int) FeedbackTier {
	for _, t := range feedbackTiers {
		if pct >= t.threshold {
			return t.tier
		}
	}
	return FeedbackTier{Level: "poor", Message: "Poor result. Start again from the basic concepts.", Color: "red"}
}

// ReviewRow is the per-question entry of the final review. One row is
// produced for every question, answered or not.
type ReviewRow struct {
	Index        int    `json:"index"`
	Prompt       string `json:"question"`
	SelectedText string `json:"selected"`
	CorrectText  string `json:"correctAnswer"`
	Answered     bool   `json:"answered"`
	IsCorrect    bool   `json:"isCorrect"`
	Explanation  string `json:"explanation"`
}

// QuizResult is the finalization output of a session.
type QuizResult struct {
	SessionID       string       `json:"sessionId"`
	Correct         int          `json:"correct"`
	Answered        int          `json:"answered"`
	Total           int          `json:"total"`
	Percentage      int          `json:"percentage"`
	FinalScore      int          `json:"finalScore"`
	TimeUsedSeconds int          `json:"timeUsed"`
	Tier            FeedbackTier `json:"feedback"`
	CompletionType  string       `json:"completionType"`
	Review          []ReviewRow  `json:"review"`
	CompletedAt     time.Time    `json:"completedAt"`
}

// Recommendations returns study advice for a percentage band, following
// the submission endpoint contract.
func Recommendations(pct int, hardCorrect, hardTotal int) []string {
	var recs []string
	switch {
	case pct < 60:
		recs = append(recs,
			"Focus on the fundamental concepts before tackling advanced topics",
			"Spend more time studying and repeat the quiz to improve")
	case pct < 80:
		recs = append(recs,
			"Good work! Keep practicing to reach excellence",
			"Review the topics where you made mistakes")
	default:
		recs = append(recs,
			"Excellent preparation! You are ready for the exam",
			"Keep this level with regular reviews")
	}
	if hardTotal > 0 && hardCorrect*2 < hardTotal {
		recs = append(recs, "Work on the hardest questions to improve further")
	}
	return recs
}
