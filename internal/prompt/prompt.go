package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Build formats the instruction sent to the model. The style label and
// change description are substituted verbatim; the core client treats the
// result as an opaque string.
func Build(description, style string) string {
	return fmt.Sprintf(
		"You are an expert programmer writing a git commit message.\n"+
			"Your task is to generate a single, git commit message in the '%s' style for the following change description.\n\n"+
			"VERY IMPORTANT: Your entire response must be only the commit message itself. Do not include any surrounding text, explanations, apologies, or markdown formatting like ```.\n\n"+
			"Change Description: \"%s\"",
		style, description)
}

var reCodeFence = regexp.MustCompile("(?ms)^```(?:\\w+)?\\s*([\\s\\S]+?)\\s*```$")

// StripCodeFence unwraps a single markdown code block. Models occasionally
// fence their output despite the prompt telling them not to. Returns the
// trimmed input unchanged (and false) when no block is found.
func StripCodeFence(s string) (string, bool) {
	s = strings.TrimSpace(s)
	m := reCodeFence.FindStringSubmatch(s)
	if len(m) == 2 {
		return strings.TrimSpace(m[1]), true
	}
	return s, false
}
