// CLAUDE:SUMMARY Tiered region name resolution (exact -> alias -> fuzzy) and code-to-name-chain decomposition.
package region

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
)

// ErrNotFound is returned when a name misses every resolution tier.
// Callers decide whether to substitute a fallback code; the resolver
// itself never defaults.
var ErrNotFound = errors.New("region: no code for name")

// cityAliases maps common short forms of major cities to their codes.
// The exact tier only knows full official names ("北京市", "深圳市"), so
// the everyday suffix-less forms get a direct shortcut before the fuzzy
// tier is consulted.
var cityAliases = map[string]string{
	"北京": "110000",
	"天津": "120000",
	"上海": "310000",
	"重庆": "500000",
	"广州": "440100",
	"深圳": "440300",
	"杭州": "330100",
	"南京": "320100",
	"苏州": "320500",
	"武汉": "420100",
	"成都": "510100",
	"西安": "610100",
}

// Resolver resolves free-text region names to 6-digit codes and codes back
// to display name chains. One Resolver owns one derived name index; the
// fuzzy structures are built on first fuzzy-tier use and reused.
type Resolver struct {
	hierarchy *Hierarchy
	index     *codeIndex

	fuzzyOnce sync.Once
	fuzzy     *fuzzyIndex
}

// NewResolver builds the name index for a hierarchy. The index build reads
// only the completed hierarchy maps, so construction never re-enters the
// resolver.
func NewResolver(h *Hierarchy) *Resolver {
	return &Resolver{
		hierarchy: h,
		index:     buildCodeIndex(h),
	}
}

// CodeForName resolves a region name to a 6-digit code. Tiers, each tried
// only when the previous one misses:
//
//  1. exact match against the name index
//  2. major-city alias table
//  3. fuzzy prefix / character-inclusion lookup
//
// The fuzzy tie-break is first-in-insertion-order, not relevance-ranked.
// Returns ErrNotFound when every tier misses.
func (r *Resolver) CodeForName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}

	if code, ok := r.index.nameToCode[name]; ok {
		return code, nil
	}
	if code, ok := cityAliases[name]; ok {
		return code, nil
	}

	r.fuzzyOnce.Do(func() {
		r.fuzzy = buildFuzzyIndex(r.index)
	})
	if code, ok := r.fuzzy.lookup(name); ok {
		return code, nil
	}
	return "", ErrNotFound
}

// NameForCode returns the display name recorded for a code, "" when the
// code is unknown. No fuzziness in this direction.
func (r *Resolver) NameForCode(code string) string {
	return r.index.codeToName[code]
}

// HierarchyChain decomposes a 6-digit district code into display name
// fragments: province, city (omitted for the four direct-administered
// municipalities), district, and — when rng is non-nil and the dataset has
// townships for the district — one randomly chosen township. A fragment
// already contained in an earlier fragment is dropped.
func (r *Resolver) HierarchyChain(districtCode string, rng *rand.Rand) []string {
	if len(districtCode) != 6 {
		return nil
	}

	var frags []string
	add := func(frag string) {
		if frag == "" || frag == placeholderDistrict {
			return
		}
		for _, earlier := range frags {
			if strings.Contains(earlier, frag) {
				return
			}
		}
		frags = append(frags, frag)
	}

	add(r.hierarchy.ProvinceName(districtCode[:2]))
	if !municipalityPrefixes[districtCode[:2]] {
		if city, ok := r.hierarchy.CityInfo(districtCode[:2], districtCode[2:4]); ok {
			add(city.Name)
		}
	}
	if d, ok := r.hierarchy.District(districtCode); ok {
		add(d.Name)
	}
	if rng != nil {
		if townships := r.hierarchy.TownshipsOf(districtCode); len(townships) > 0 {
			add(townships[rng.Intn(len(townships))].Name)
		}
	}
	return frags
}
