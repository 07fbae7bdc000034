package vlm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```(?:json|html)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// decodeExtraction parses raw model output into an Extraction. The model is
// asked for a {"korean","english"} JSON object but is not always obedient:
// code fences are stripped and HTML-escaped ampersands restored before
// parsing, and anything that still fails to parse is treated as the Korean
// text with an empty English field. This function never fails.
func decodeExtraction(content string) Extraction {
	cleaned := strings.TrimSpace(content)
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "&amp;", "&")
	cleaned = strings.TrimSpace(cleaned)

	var parsed struct {
		Korean  string `json:"korean"`
		English string `json:"english"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && strings.TrimSpace(parsed.Korean) != "" {
		return Extraction{
			Korean:  strings.TrimSpace(parsed.Korean),
			English: strings.TrimSpace(parsed.English),
		}
	}

	// Fallback: the whole response is the Korean text. An empty English
	// field means "no translation available", not a failure.
	return Extraction{Korean: cleaned}
}
