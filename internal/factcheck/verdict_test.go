package factcheck

import "testing"

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		in   string
		want Verdict
	}{
		{"True", VerdictTrue},
		{"false", VerdictFalse},
		{" MISLEADING ", VerdictMisleading},
		{"Unverified", VerdictUnverified},
		{"maybe", VerdictUnverified},
		{"", VerdictUnverified},
	}
	for _, tt := range tests {
		if got := parseVerdict(tt.in); got != tt.want {
			t.Errorf("parseVerdict(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Medical", CategoryMedical},
		{"financial", CategoryFinancial},
		{"POLITICAL", CategoryPolitical},
		{"science", CategoryScience},
		{"Sports", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		if got := parseCategory(tt.in); got != tt.want {
			t.Errorf("parseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"number", float64(85), 85},
		{"string number", "42", 42},
		{"negative clamped", float64(-5), 0},
		{"over clamped", float64(150), 100},
		{"garbage string", "high", 0},
		{"missing", nil, 0},
		{"wrong type", []any{1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseConfidence(tt.in); got != tt.want {
				t.Fatalf("parseConfidence(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckVerdictPayload(t *testing.T) {
	valid := map[string]any{
		"verdict":     "False",
		"confidence":  99,
		"explanation": "nope",
		"category":    "Science",
	}
	if err := checkVerdictPayload(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	drifted := map[string]any{"verdict": "Probably"}
	if err := checkVerdictPayload(drifted); err == nil {
		t.Fatal("drifted payload should fail the advisory check")
	}
}
