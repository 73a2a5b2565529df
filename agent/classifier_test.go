package agent

import "testing"

func TestClassifyDecision(t *testing.T) {
	testCases := []struct {
		name     string
		reply    string
		expected Decision
	}{
		{
			name:     "Exact YES",
			reply:    "YES",
			expected: DecisionMute,
		},
		{
			name:     "Exact true",
			reply:    "true",
			expected: DecisionMute,
		},
		{
			name:     "Exact y",
			reply:    "y",
			expected: DecisionMute,
		},
		{
			name:     "Affirmative with surrounding whitespace",
			reply:    "  Yes  ",
			expected: DecisionMute,
		},
		{
			name:     "Affirmative sentence",
			reply:    "YES I think we should mute",
			expected: DecisionMute,
		},
		{
			name:     "Exact no",
			reply:    "no",
			expected: DecisionNoMute,
		},
		{
			name:     "Exact false",
			reply:    "false",
			expected: DecisionNoMute,
		},
		{
			name:     "Exact N uppercase",
			reply:    "N",
			expected: DecisionNoMute,
		},
		{
			name:     "Negative sentence",
			reply:    "no, let's keep talking",
			expected: DecisionNoMute,
		},
		{
			name:     "Negative by substring inside a word",
			reply:    "Not at this time",
			expected: DecisionNoMute,
		},
		{
			name:     "Both yes and no picks affirmative",
			reply:    "yes and no",
			expected: DecisionMute,
		},
		{
			name:     "Unclear reply",
			reply:    "maybe?",
			expected: DecisionUnclear,
		},
		{
			name:     "Empty reply",
			reply:    "",
			expected: DecisionUnclear,
		},
		{
			name:     "Unrelated reply",
			reply:    "I am a teapot",
			expected: DecisionUnclear,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDecision(tc.reply)
			if got != tc.expected {
				t.Errorf("ClassifyDecision(%q) = %v, want %v", tc.reply, got, tc.expected)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	if DecisionMute.String() != "MUTE" {
		t.Errorf("DecisionMute.String() = %q", DecisionMute.String())
	}
	if DecisionNoMute.String() != "NO_MUTE" {
		t.Errorf("DecisionNoMute.String() = %q", DecisionNoMute.String())
	}
	if DecisionUnclear.String() != "UNCLEAR" {
		t.Errorf("DecisionUnclear.String() = %q", DecisionUnclear.String())
	}
}
