package models

import "testing"

func TestTierForPercentage(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89, "good"},
		{75, "good"},
		{74, "fair"},
		{60, "fair"},
		{59, "weak"},
		{50, "weak"},
		{40, "weak"},
		{39, "poor"},
		{0, "poor"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			tier := TierForPercentage(tc.percentage)
			if tier.Level != tc.expected {
				t.Errorf("TierForPercentage(%d) = %q, want %q", tc.percentage, tier.Level, tc.expected)
			}
			if tier.Message == "" || tier.Color == "" {
				t.Errorf("Tier %q is missing message or color", tier.Level)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	low := Recommendations(40, 0, 0)
	if len(low) != 2 {
		t.Errorf("Expected 2 recommendations for low score, got %d", len(low))
	}

	withHard := Recommendations(85, 1, 4)
	if len(withHard) != 3 {
		t.Errorf("Expected extra recommendation when hard questions lag, got %d", len(withHard))
	}
}
