package translate

import (
	"strings"
	"testing"
)

func TestSanitizeAIText_RemovesInlineParenthesizedDisclaimer(t *testing.T) {
	in := "ನಮಸ್ಕಾರ, ಇದು ಸುದ್ದಿ ಸಾರಾಂಶ.\n(Note: This translation is a machine translation and may contain errors.) ಹೆಚ್ಚಿನ ವಿವರಗಳು ಇಲ್ಲಿವೆ."
	out := SanitizeAIText(in)
	if out == "" {
		t.Fatalf("got empty output")
	}
	if strings.Contains(strings.ToLower(out), "note:") {
		t.Errorf("output still contains 'Note:' disclaimer: %q", out)
	}
	if !strings.Contains(out, "ಹೆಚ್ಚಿನ ವಿವರಗಳು") {
		t.Errorf("expected content preserved after disclaimer removal, got: %q", out)
	}
}

func TestSanitizeAIText_RemovesFullLineNote(t *testing.T) {
	in := "Note: This translation is a machine translation and may contain errors.\nಇದು ಉಳಿಯಬೇಕಾದ ಸಾಲು."
	out := SanitizeAIText(in)
	if strings.Contains(strings.ToLower(out), "note:") {
		t.Errorf("disclaimer line was not removed: %q", out)
	}
	if !strings.Contains(out, "ಉಳಿಯಬೇಕಾದ") {
		t.Errorf("expected content line to remain: %q", out)
	}
}

func TestSanitizeAIText_RemovesBracketedDisclaimer(t *testing.T) {
	in := "[Note: Machine translation] ಇದು ಪರೀಕ್ಷಾ ಸಾಲು."
	out := SanitizeAIText(in)
	if strings.Contains(strings.ToLower(out), "note") {
		t.Errorf("bracketed disclaimer was not removed: %q", out)
	}
	if !strings.Contains(out, "ಇದು ಪರೀಕ್ಷಾ ಸಾಲು") {
		t.Errorf("expected text preserved, got: %q", out)
	}
}
