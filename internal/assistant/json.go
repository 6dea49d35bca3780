package assistant

import "strings"

const fence = "```"

// fencedBlock returns the body of the first ```lang block in raw.
func fencedBlock(raw, lang string) (string, bool) {
	start := strings.Index(raw, fence+lang)
	if start == -1 {
		return "", false
	}
	body := raw[start+len(fence)+len(lang):]
	end := strings.Index(body, fence)
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}

// withoutFencedBlock removes the first ```lang block from raw.
func withoutFencedBlock(raw, lang string) string {
	start := strings.Index(raw, fence+lang)
	if start == -1 {
		return strings.TrimSpace(raw)
	}
	rest := raw[start+len(fence)+len(lang):]
	end := strings.Index(rest, fence)
	if end == -1 {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(raw[:start] + rest[end+len(fence):])
}

// cleanModelJSON strips Markdown fences and any prose around a JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if block, ok := fencedBlock(s, "json"); ok {
		s = block
	} else if block, ok := fencedBlock(s, ""); ok {
		s = block
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}

	return strings.TrimSpace(s)
}
