package bank

import "sort"

// Group pairs a prompt with its ordered follow-ups.
type Group struct {
	Parent   ProblemRecord
	Children []ProblemRecord
}

// Groups derives the prompt/follow-up grouping from the current record list.
// The result is memoized on the store version, so repeated calls between
// mutations return the cached slice.
//
// Prompts appear in source order. A record whose ParentID matches no prompt
// is an orphan: it is silently excluded from every group but stays in the
// underlying list and round-trips on export.
func (s *Store) Groups() []Group {
	if s.groups != nil && s.groupsVersion == s.version {
		return s.groups
	}
	s.groups = BuildGroups(s.records)
	s.groupsVersion = s.version
	return s.groups
}

// BuildGroups is the pure grouping derivation over a record list.
func BuildGroups(records []ProblemRecord) []Group {
	groups := make([]Group, 0, len(records))
	index := make(map[int]int, len(records))

	for _, r := range records {
		if r.ParentID == nil {
			index[r.ProblemID] = len(groups)
			groups = append(groups, Group{Parent: r.Clone()})
		}
	}

	for _, r := range records {
		if r.ParentID == nil {
			continue
		}
		gi, ok := index[*r.ParentID]
		if !ok {
			continue // orphan
		}
		groups[gi].Children = append(groups[gi].Children, r.Clone())
	}

	for gi := range groups {
		sortChildren(groups[gi].Children)
	}
	return groups
}

// sortChildren orders siblings by Order ascending with nil sorting last,
// ties broken by ascending ProblemID.
func sortChildren(children []ProblemRecord) {
	sort.SliceStable(children, func(i, j int) bool {
		oi, oj := childOrder(children[i]), childOrder(children[j])
		if oi != oj {
			return oi < oj
		}
		return children[i].ProblemID < children[j].ProblemID
	})
}

const orderLast = int64(1) << 40

func childOrder(r ProblemRecord) int64 {
	if r.Order == nil {
		return orderLast
	}
	return int64(*r.Order)
}
