package translate

import (
	"regexp"
	"strings"
)

var (
	parenDisclaimerRe   = regexp.MustCompile(`(?i)\((note|disclaimer)[^)]*\)`)
	bracketDisclaimerRe = regexp.MustCompile(`(?i)\[(note|disclaimer)[^\]]*\]`)
	lineDisclaimerRe    = regexp.MustCompile(`(?i)^(note|disclaimer)\s*:`)
)

// SanitizeAIText strips machine-translation disclaimers that chat models
// sometimes prepend or embed despite being told not to.
func SanitizeAIText(text string) string {
	text = parenDisclaimerRe.ReplaceAllString(text, "")
	text = bracketDisclaimerRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if lineDisclaimerRe.MatchString(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
