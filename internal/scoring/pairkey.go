package scoring

// CanonicalPair orders two user ids lexicographically. Every pairwise
// record is keyed by this ordering, so callers must canonicalize before
// any read or write; CanonicalPair(x, y) == CanonicalPair(y, x).
func CanonicalPair(idA, idB string) (string, string) {
	if idA < idB {
		return idA, idB
	}
	return idB, idA
}
