package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractText pulls the generated text out of a decoded generateContent
// response tree. Only candidates[0].content.parts[0].text is consulted;
// further candidates or parts are ignored. The result is trimmed of
// surrounding whitespace, which may leave it empty.
func extractText(v any) (string, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", malformed(v)
	}
	candidates, ok := obj["candidates"].([]any)
	if !ok || len(candidates) == 0 {
		return "", malformed(v)
	}
	cand, ok := candidates[0].(map[string]any)
	if !ok {
		return "", malformed(v)
	}
	content, ok := cand["content"].(map[string]any)
	if !ok {
		return "", malformed(v)
	}
	parts, ok := content["parts"].([]any)
	if !ok || len(parts) == 0 {
		return "", malformed(v)
	}
	part, ok := parts[0].(map[string]any)
	if !ok {
		return "", malformed(v)
	}
	text, ok := part["text"].(string)
	if !ok {
		return "", malformed(v)
	}
	return strings.TrimSpace(text), nil
}

func malformed(v any) *MalformedResponseError {
	b, err := json.Marshal(v)
	if err != nil {
		return &MalformedResponseError{Raw: fmt.Sprintf("%v", v)}
	}
	return &MalformedResponseError{Raw: string(b)}
}
