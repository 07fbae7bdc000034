package bank

import "testing"

func TestBuildGroups(t *testing.T) {
	records := []ProblemRecord{
		{ProblemID: 2000},
		{ProblemID: 1000},
		{ProblemID: 1003, ParentID: intp(1000)},                 // no order: sorts last
		{ProblemID: 1002, ParentID: intp(1000), Order: intp(2)},
		{ProblemID: 1001, ParentID: intp(1000), Order: intp(1)},
		{ProblemID: 2001, ParentID: intp(2000), Order: intp(1)},
	}

	groups := BuildGroups(records)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	// Prompts keep their source order.
	if groups[0].Parent.ProblemID != 2000 || groups[1].Parent.ProblemID != 1000 {
		t.Fatalf("prompt order = [%d %d], want [2000 1000]",
			groups[0].Parent.ProblemID, groups[1].Parent.ProblemID)
	}

	want := []int{1001, 1002, 1003}
	got := groups[1].Children
	if len(got) != len(want) {
		t.Fatalf("len(children) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ProblemID != id {
			t.Fatalf("children[%d] = %d, want %d", i, got[i].ProblemID, id)
		}
	}
}

func TestBuildGroupsOrderTieBreak(t *testing.T) {
	records := []ProblemRecord{
		{ProblemID: 10},
		{ProblemID: 13, ParentID: intp(10), Order: intp(1)},
		{ProblemID: 11, ParentID: intp(10), Order: intp(1)},
		{ProblemID: 12, ParentID: intp(10), Order: intp(1)},
	}

	groups := BuildGroups(records)
	got := groups[0].Children
	for i, want := range []int{11, 12, 13} {
		if got[i].ProblemID != want {
			t.Fatalf("tie-break: children[%d] = %d, want %d", i, got[i].ProblemID, want)
		}
	}
}

func TestBuildGroupsOrphanExcluded(t *testing.T) {
	records := []ProblemRecord{
		{ProblemID: 1},
		{ProblemID: 2, ParentID: intp(99)}, // dangling parent
	}

	groups := BuildGroups(records)
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	if len(groups[0].Children) != 0 {
		t.Fatalf("orphan appeared in a group: %+v", groups[0].Children)
	}
}

func TestGroupsOrphanRetainedInStore(t *testing.T) {
	s := NewStore()
	s.Load([]ProblemRecord{
		{ProblemID: 1, Instruction: "p"},
		{ProblemID: 2, ParentID: intp(99), Instruction: "orphan", Answer: "x"},
	})

	_ = s.Groups()

	// The orphan is excluded from grouping but survives in the list verbatim.
	r, ok := s.Get(2)
	if !ok {
		t.Fatal("orphan dropped from the store")
	}
	if r.Instruction != "orphan" || r.Answer != "x" || *r.ParentID != 99 {
		t.Fatalf("orphan was altered: %+v", r)
	}
}

func TestGroupsMemoized(t *testing.T) {
	s := NewStore()
	s.Load(seedRecords())

	g1 := s.Groups()
	g2 := s.Groups()
	if &g1[0] != &g2[0] {
		t.Fatal("expected memoized groups between mutations")
	}

	s.Patch(1001, Patch{Answer: strp("new")})
	g3 := s.Groups()
	if g3[0].Children[0].Answer != "new" {
		t.Fatal("groups not recomputed after mutation")
	}
}

func TestEveryRecordGroupedExactlyOnce(t *testing.T) {
	records := []ProblemRecord{
		{ProblemID: 1},
		{ProblemID: 2},
		{ProblemID: 3, ParentID: intp(1)},
		{ProblemID: 4, ParentID: intp(2)},
		{ProblemID: 5, ParentID: intp(1), Order: intp(1)},
		{ProblemID: 6, ParentID: intp(42)}, // orphan
	}

	groups := BuildGroups(records)

	seen := map[int]int{}
	for _, g := range groups {
		seen[g.Parent.ProblemID]++
		for _, c := range g.Children {
			seen[c.ProblemID]++
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("record %d appeared %d times", id, n)
		}
	}
	if _, ok := seen[6]; ok {
		t.Fatal("orphan 6 should not be grouped")
	}
	if len(seen) != 5 {
		t.Fatalf("grouped %d records, want 5", len(seen))
	}
}
