// CLAUDE:SUMMARY Random narrowing of province/city-level codes down to one concrete district code.
package region

import (
	"math/rand"
	"strings"
)

// municipalityPrefixes are the four direct-administered municipalities.
// Their districts hang directly off the province, so candidate selection
// matches on the province prefix alone.
var municipalityPrefixes = map[string]bool{
	"11": true, // 北京
	"12": true, // 天津
	"31": true, // 上海
	"50": true, // 重庆
}

// ResolveToDistrict narrows a code ending in "00" to a uniformly random
// district beneath it. Municipality codes draw from every district of the
// province; ordinary city-level codes draw from the districts of that
// city; ordinary province-level codes draw from every district of the
// province. Placeholder units are excluded. A code that is already
// district-level, or one with no eligible districts beneath it, is
// returned unchanged.
func (h *Hierarchy) ResolveToDistrict(code string, rng *rand.Rand) string {
	if len(code) != 6 || !strings.HasSuffix(code, "00") {
		return code
	}

	var candidates []Unit
	switch {
	case municipalityPrefixes[code[:2]]:
		candidates = h.DistrictsInProvince(code[:2])
	case code[2:4] != "00":
		candidates = h.DistrictsOf(code[:4])
	default:
		candidates = h.DistrictsInProvince(code[:2])
	}

	eligible := make([]Unit, 0, len(candidates))
	for _, u := range candidates {
		if u.Name == placeholderDistrict {
			continue
		}
		eligible = append(eligible, u)
	}
	if len(eligible) == 0 {
		return code
	}
	return eligible[rng.Intn(len(eligible))].Code
}

// ConcreteDistricts returns every non-placeholder district nationwide, in
// dataset order. Used as the draw pool when no region constraint is given.
func (h *Hierarchy) ConcreteDistricts() []Unit {
	var out []Unit
	for _, p := range h.provinceOrder {
		for _, d := range h.provDistricts[p.Code] {
			if d.Name == placeholderDistrict {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}
