// Package catalog holds the static problem classification tables: top-level
// categories, their sub-levels, and the chapter-number display labels.
// The tables are compiled-in constants; they are not user-editable and are
// not loaded from configuration.
package catalog

import "strconv"

// TopLevel is a top-level classification category.
type TopLevel struct {
	ID    int
	Label string
}

// SubLevel is a sub-level category belonging to exactly one top-level.
type SubLevel struct {
	ID    int
	Label string
}

// ChapterNumber resolves a chapter id to its display label.
// Returns ("", false) when the id is not in the chapter-number table.
func ChapterNumber(chapterID int) (string, bool) {
	n, ok := chapterNumbers[chapterID]
	return n, ok
}

// ChapterNumberOrRaw resolves a chapter id to its display label, falling back
// to the stringified raw id for ids missing from the table. This is the
// fallback used by the record-recompute paths (add-child, reclassification);
// the flatten path uses ChapterNumber directly and emits null instead.
func ChapterNumberOrRaw(chapterID int) string {
	if n, ok := chapterNumbers[chapterID]; ok {
		return n
	}
	return strconv.Itoa(chapterID)
}

// TopLevels returns every top-level category in display order.
func TopLevels() []TopLevel {
	out := make([]TopLevel, len(topLevels))
	copy(out, topLevels)
	return out
}

// SubLevelsOf returns the sub-levels of the given top-level category in
// display order, or nil for an unknown id.
func SubLevelsOf(topID int) []SubLevel {
	subs, ok := subLevels[topID]
	if !ok {
		return nil
	}
	out := make([]SubLevel, len(subs))
	copy(out, subs)
	return out
}

// TopLevelFor finds the top-level category whose sub-level list contains
// subID. Used on import to reconstruct the category selection, since bank
// files store only the resolved chapter id.
func TopLevelFor(subID int) (int, bool) {
	for _, t := range topLevels {
		for _, s := range subLevels[t.ID] {
			if s.ID == subID {
				return t.ID, true
			}
		}
	}
	return 0, false
}

// SubLevelLabel returns the label of a sub-level id, or ("", false) if the id
// is not a sub-level of any top-level category.
func SubLevelLabel(subID int) (string, bool) {
	for _, t := range topLevels {
		for _, s := range subLevels[t.ID] {
			if s.ID == subID {
				return s.Label, true
			}
		}
	}
	return "", false
}
