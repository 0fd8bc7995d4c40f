package shamir

import "github.com/duskfall-labs/threshold/pkg/share"

// referenceIds returns the deterministic x-coordinate set {1, ..., n} used
// by Split, per spec.md §9's resolution of the x-coordinate selection
// question: the reference design's 1..N set, not randomly sampled ids.
func referenceIds(n int) []uint8 {
	ids := make([]uint8, n)
	for i := range ids {
		ids[i] = uint8(i + 1) //nolint:gosec // n is bounded by share.MaxID above Split/Config.Validate
	}
	return ids
}

// usedIds returns the set of ids already present in shares.
func usedIds(shares []share.Share) map[uint8]bool {
	used := make(map[uint8]bool, len(shares))
	for _, s := range shares {
		used[s.ID] = true
	}
	return used
}

// unusedIds returns up to count ids in [1, share.MaxID] not present in used,
// in ascending order. It returns fewer than count if the range is
// exhausted -- Extend's caller is expected to check the returned length.
func unusedIds(used map[uint8]bool, count int) []uint8 {
	ids := make([]uint8, 0, count)
	for i := 1; i <= share.MaxID && len(ids) < count; i++ {
		id := uint8(i) //nolint:gosec // i is bounded by share.MaxID above
		if !used[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
