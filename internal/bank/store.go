package bank

import (
	"math/rand/v2"

	"github.com/classday/probank/internal/catalog"
)

// Store holds the authoritative flat record list for one editing session plus
// the current category selection. All mutations are synchronous and run to
// completion; the store is owned by a single session and needs no locking.
//
// Every mutation bumps an internal version; Groups memoizes on it so the
// derived grouping is recomputed only when the record list actually changed.
type Store struct {
	records  []ProblemRecord
	version  uint64
	topLevel int
	subLevel int

	// pristine is the record list exactly as last loaded. Edits touch only
	// the working copy above; the loaded file stays reconstructable.
	pristine    []ProblemRecord
	loadVersion uint64

	groupsVersion uint64
	groups        []Group
}

// NewStore creates an empty store with the default category selection (the
// first top-level category and its first sub-level).
func NewStore() *Store {
	s := &Store{}
	tops := catalog.TopLevels()
	if len(tops) > 0 {
		s.topLevel = tops[0].ID
		if subs := catalog.SubLevelsOf(s.topLevel); len(subs) > 0 {
			s.subLevel = subs[0].ID
		}
	}
	return s
}

// Records returns a deep copy of the current record list in source order.
func (s *Store) Records() []ProblemRecord {
	return CloneRecords(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Version returns the store's mutation counter.
func (s *Store) Version() uint64 { return s.version }

// Get returns a copy of the record with the given id.
func (s *Store) Get(id int) (ProblemRecord, bool) {
	for _, r := range s.records {
		if r.ProblemID == id {
			return r.Clone(), true
		}
	}
	return ProblemRecord{}, false
}

// Load replaces the store contents wholesale. Used by the import path after
// validation succeeds; a failed import never reaches Load. The loaded list is
// also kept as the new pristine copy.
func (s *Store) Load(records []ProblemRecord) {
	s.records = CloneRecords(records)
	s.pristine = CloneRecords(records)
	s.version++
	s.loadVersion = s.version
}

// Pristine returns a deep copy of the record list as it was last loaded,
// before any edits. Nil when nothing has been loaded.
func (s *Store) Pristine() []ProblemRecord {
	if s.pristine == nil {
		return nil
	}
	return CloneRecords(s.pristine)
}

// Dirty reports whether the working copy has been mutated since the last
// Load. A store that was never loaded is dirty as soon as records are added.
func (s *Store) Dirty() bool {
	return s.version != s.loadVersion
}

// Append adds records to the working copy as an edit. Unlike Load it leaves
// the pristine copy alone.
func (s *Store) Append(records []ProblemRecord) {
	s.records = append(s.records, CloneRecords(records)...)
	s.version++
}

// Patch replaces the record with the given id by a merged copy. Unknown ids
// are a no-op. The record's ProblemID is never changed.
func (s *Store) Patch(id int, p Patch) {
	for i, r := range s.records {
		if r.ProblemID == id {
			s.records[i] = p.apply(r)
			s.version++
			return
		}
	}
}

// AddChild appends a new blank follow-up under parentID and returns its
// placeholder id (always negative). The chapter is inherited from the parent
// when it exists, otherwise taken from the current category selection. Order
// is one past the parent's current child count.
func (s *Store) AddChild(parentID int) int {
	id := -(rand.IntN(1_000_000_000) + 1)

	chapterID := s.subLevel
	if parent, ok := s.Get(parentID); ok && parent.ChapterID != 0 {
		chapterID = parent.ChapterID
	}
	chapterNumber := catalog.ChapterNumberOrRaw(chapterID)

	order := 1
	for _, r := range s.records {
		if r.ParentID != nil && *r.ParentID == parentID {
			order++
		}
	}

	pid := parentID
	s.records = append(s.records, ProblemRecord{
		ProblemID:     id,
		ChapterID:     chapterID,
		ChapterNumber: &chapterNumber,
		ParentID:      &pid,
		Order:         &order,
		Type:          TypeShort,
	})
	s.version++
	return id
}

// AddPrompt appends a new blank top-level prompt and returns its placeholder
// id. Chapter fields come from the current category selection.
func (s *Store) AddPrompt() int {
	id := -(rand.IntN(1_000_000_000) + 1)
	chapterNumber := catalog.ChapterNumberOrRaw(s.subLevel)

	s.records = append(s.records, ProblemRecord{
		ProblemID:     id,
		ChapterID:     s.subLevel,
		ChapterNumber: &chapterNumber,
		Type:          TypeShort,
	})
	s.version++
	return id
}

// Remove deletes the record with the given id. Removal does not cascade to
// children and does not renumber sibling orders; children of a removed prompt
// become orphans and drop out of the grouping view while remaining in the
// list.
func (s *Store) Remove(id int) {
	for i, r := range s.records {
		if r.ProblemID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.version++
			return
		}
	}
}

// Selection returns the current (top-level, sub-level) category selection.
func (s *Store) Selection() (topID, subID int) {
	return s.topLevel, s.subLevel
}

// SetSelection sets the category selection without touching any records.
// Used when import infers the selection from file contents.
func (s *Store) SetSelection(topID, subID int) {
	s.topLevel = topID
	s.subLevel = subID
}

// UpdateAllCategories reclassifies the whole bank: it sets the selection and
// recomputes ChapterID and ChapterNumber on every record. A single
// classification applies bank-wide, so this is not a per-record edit.
func (s *Store) UpdateAllCategories(topID, subID int) {
	s.topLevel = topID
	s.subLevel = subID

	chapterNumber := catalog.ChapterNumberOrRaw(subID)
	for i := range s.records {
		n := chapterNumber
		s.records[i].ChapterID = subID
		s.records[i].ChapterNumber = &n
	}
	s.version++
}
