package synth

import (
	"encoding/json"
	"strings"
	"unicode"
)

// proposal is the JSON shape the model is instructed to answer with.
// The pointer field maps both a missing key and "cmd": null to nil.
type proposal struct {
	Cmd *string `json:"cmd"`
}

// extractCommand pulls the proposed command out of a model response.
// The response must be a single JSON object; if that fails, one retry
// is made with code fence lines stripped, which tolerates models that
// fence their JSON despite instructions not to.
func extractCommand(response string) (string, bool) {
	if command, ok := decodeCommand(response); ok {
		return command, true
	}
	return decodeCommand(stripFenceLines(response))
}

func decodeCommand(text string) (string, bool) {
	var parsed proposal
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", false
	}
	if parsed.Cmd == nil || *parsed.Cmd == "" {
		return "", false
	}
	return *parsed.Cmd, true
}

// stripFenceLines drops lines that are nothing but a code fence marker.
// It never touches other lines, so it is a no-op on fence-free input.
func stripFenceLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isFenceLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isFenceLine reports whether line consists of three backticks at
// column one, optionally followed by a language tag. Indented fences
// and fences with trailing prose do not count.
func isFenceLine(line string) bool {
	rest, ok := strings.CutPrefix(line, "```")
	if !ok {
		return false
	}
	rest = strings.TrimSuffix(rest, "\r")
	for _, r := range rest {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-_.", r) {
			return false
		}
	}
	return true
}
