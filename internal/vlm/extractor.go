// Package vlm implements the image-to-bilingual-text bridge: a dropped
// problem image goes to a vision-language model and comes back as a
// {korean, english} HTML+LaTeX text pair.
package vlm

import "context"

// Extractor is the core abstraction for VLM interaction. Consumers hand an
// image to Extract and receive the recognized bilingual text.
type Extractor interface {
	// Extract sends the image to the model and returns the recognized text.
	// An empty English field means "no translation available" and is not an
	// error; malformed model output is recovered locally and never surfaces
	// as an error either.
	Extract(ctx context.Context, img Image) (*Extraction, error)

	// ModelID returns the model identifier this extractor is configured to use.
	ModelID() string
}

// Image is a raw problem image.
type Image struct {
	// Data is the raw image bytes.
	Data []byte

	// MIME is the image media type, e.g. "image/png". Defaults to
	// "image/png" when empty.
	MIME string
}

// Extraction is the bilingual recognition result.
type Extraction struct {
	Korean  string
	English string
}

// mime returns the image media type with the default applied.
func (img Image) mime() string {
	if img.MIME == "" {
		return "image/png"
	}
	return img.MIME
}

// resolveModel maps a friendly model name through the given table, passing
// through unmapped names verbatim so full model IDs keep working.
func resolveModel(name string, table map[string]string) string {
	if id, ok := table[name]; ok {
		return id
	}
	return name
}
