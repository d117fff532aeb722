package utils

import (
	"strings"
	"testing"
)

func TestBuildItineraryPromptEmbedsFieldsVerbatim(t *testing.T) {
	prompt := BuildItineraryPrompt(5, "Paris, France", "Moderate", "Couple")

	for _, want := range []string{"5-day", "Paris, France", "Moderate", "Couple"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildItineraryPromptInstructions(t *testing.T) {
	prompt := BuildItineraryPrompt(3, "Tokyo, Japan", "Luxury", "Solo")

	for _, want := range []string{
		"Day-by-day breakdown",
		"Must-visit attractions",
		"Budget-friendly food recommendations",
		"Local transportation tips",
		"Estimated costs for activities",
		"Format the response in markdown.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing instruction %q", want)
		}
	}
}

func TestBuildItineraryPromptDeterministic(t *testing.T) {
	a := BuildItineraryPrompt(7, "Lima, Peru", "Cheap", "Friends")
	b := BuildItineraryPrompt(7, "Lima, Peru", "Cheap", "Friends")
	if a != b {
		t.Error("expected identical prompts for identical inputs")
	}
}
