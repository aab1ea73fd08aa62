package utils

import "testing"

func TestSanitizeKeyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Laptop", "laptop"},
		{"spaces become hyphens", "work laptop", "work-laptop"},
		{"strips special characters", "alice's MacBook!", "alices-macbook"},
		{"collapses hyphens", "a--b---c", "a-b-c"},
		{"trims hyphens", "-edge-", "edge"},
		{"empty falls back to default", "  ", "key"},
		{"preserves underscores", "ci_runner", "ci_runner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeKeyName(tt.input); got != tt.want {
				t.Errorf("SanitizeKeyName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateKeyName_AppendsSuffixOnConflict(t *testing.T) {
	base, err := GenerateKeyName(nil)
	if err != nil {
		t.Fatalf("GenerateKeyName failed: %v", err)
	}
	if base == "" {
		t.Fatal("expected a non-empty key name")
	}

	next, err := GenerateKeyName([]string{base})
	if err != nil {
		t.Fatalf("GenerateKeyName failed: %v", err)
	}
	if next != base+"-2" {
		t.Errorf("expected %q, got %q", base+"-2", next)
	}

	third, err := GenerateKeyName([]string{base, base + "-2"})
	if err != nil {
		t.Fatalf("GenerateKeyName failed: %v", err)
	}
	if third != base+"-3" {
		t.Errorf("expected %q, got %q", base+"-3", third)
	}
}
