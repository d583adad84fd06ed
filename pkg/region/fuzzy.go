// CLAUDE:SUMMARY Lazily-built fuzzy lookup structures: 1-3 rune prefix buckets and per-rune inclusion buckets over all indexed names.
package region

// fuzzyIndex holds the two fuzzy lookup structures. Both are pure derived
// state over a codeIndex: rebuilding from the same index yields an
// identical structure. Buckets are ordered sets — codes appear in the
// order their names were inserted into the codeIndex, once each.
type fuzzyIndex struct {
	prefix      map[string][]string
	includeChar map[rune][]string
}

// buildFuzzyIndex covers every name in the code index. For each name it
// registers the code under the name's 1, 2 and 3 rune prefixes and under
// every distinct rune of the name.
func buildFuzzyIndex(idx *codeIndex) *fuzzyIndex {
	f := &fuzzyIndex{
		prefix:      make(map[string][]string),
		includeChar: make(map[rune][]string),
	}

	// Membership sets keep bucket insertion O(1); discarded after build.
	prefixSeen := make(map[string]map[string]bool)
	charSeen := make(map[rune]map[string]bool)

	for _, name := range idx.names {
		code := idx.nameToCode[name]
		runes := []rune(name)

		for l := 1; l <= 3 && l <= len(runes); l++ {
			key := string(runes[:l])
			if prefixSeen[key] == nil {
				prefixSeen[key] = make(map[string]bool)
			}
			if !prefixSeen[key][code] {
				prefixSeen[key][code] = true
				f.prefix[key] = append(f.prefix[key], code)
			}
		}

		for _, r := range runes {
			if charSeen[r] == nil {
				charSeen[r] = make(map[string]bool)
			}
			if !charSeen[r][code] {
				charSeen[r][code] = true
				f.includeChar[r] = append(f.includeChar[r], code)
			}
		}
	}
	return f
}

// lookup applies the two fuzzy heuristics in order. The whole input is
// treated as a prefix key only when it is at most 3 runes long; otherwise
// (or on a prefix miss) the first rune of the input that has any inclusion
// bucket wins. Tie-break is always first-in-insertion-order.
func (f *fuzzyIndex) lookup(name string) (string, bool) {
	runes := []rune(name)
	if len(runes) <= 3 {
		if bucket := f.prefix[name]; len(bucket) > 0 {
			return bucket[0], true
		}
	}
	for _, r := range runes {
		if bucket := f.includeChar[r]; len(bucket) > 0 {
			return bucket[0], true
		}
	}
	return "", false
}
