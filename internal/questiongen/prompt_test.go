package questiongen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	input := GenerateInput{
		Domain:         "Algebra",
		Difficulty:     "medium",
		PriorQuestions: []string{"If 3x = 12, what is x?"},
	}

	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Domain: Algebra") {
		t.Error("message missing domain")
	}
	if !strings.Contains(msg, "Difficulty: medium") {
		t.Error("message missing difficulty")
	}
	if !strings.Contains(msg, "If 3x = 12, what is x?") {
		t.Error("message missing prior question")
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("buildDedup(nil) = %q, want None", got)
	}
}

func TestBuildDedup_Numbered(t *testing.T) {
	got := buildDedup([]string{"first", "second"}, 8)
	want := "1. first\n2. second"
	if got != want {
		t.Errorf("buildDedup = %q, want %q", got, want)
	}
}

func TestBuildDedup_KeepsMostRecent(t *testing.T) {
	prior := []string{"a", "b", "c", "d"}
	got := buildDedup(prior, 2)
	if strings.Contains(got, "a") || strings.Contains(got, "b") {
		t.Errorf("expected oldest entries dropped, got %q", got)
	}
	if !strings.Contains(got, "c") || !strings.Contains(got, "d") {
		t.Errorf("expected newest entries kept, got %q", got)
	}
}
