// CLAUDE:SUMMARY Derived name<->code index built by province->city->district traversal, first-write-wins on collisions.
package region

import "log/slog"

// placeholderDistrict is the non-specific "districts of this city" entry
// present in the official tables. It carries no locality information, so it
// is skipped when composing qualified display names and excluded from
// random district selection.
const placeholderDistrict = "市辖区"

// codeIndex is the derived name resolution table. Every code that appears
// in the hierarchy has at least one name mapped to it; a name maps to
// exactly one code, the first one inserted during traversal.
type codeIndex struct {
	nameToCode map[string]string
	codeToName map[string]string
	names      []string // distinct names in insertion order, for the fuzzy index
}

// buildCodeIndex walks the completed hierarchy province by province,
// inserting for each unit both a fully-qualified name (province+city+
// district concatenation, placeholder fragments skipped) and the unit's
// bare name. Collisions keep the first insertion.
func buildCodeIndex(h *Hierarchy) *codeIndex {
	idx := &codeIndex{
		nameToCode: make(map[string]string),
		codeToName: make(map[string]string),
	}

	var collisions int
	insert := func(name, code string) {
		if name == "" {
			return
		}
		if _, ok := idx.nameToCode[name]; ok {
			collisions++
		} else {
			idx.nameToCode[name] = code
			idx.names = append(idx.names, name)
		}
		if _, ok := idx.codeToName[code]; !ok {
			idx.codeToName[code] = name
		}
	}

	for _, p := range h.Provinces() {
		insert(p.Name, p.Code+"0000")
		for _, c := range h.CitiesOf(p.Code) {
			cityFrag := c.Name
			if cityFrag == placeholderDistrict {
				cityFrag = ""
			}
			if cityFrag != "" {
				insert(p.Name+cityFrag, c.Code+"00")
				insert(cityFrag, c.Code+"00")
			}
			for _, d := range h.DistrictsOf(c.Code) {
				if d.Name == placeholderDistrict {
					continue
				}
				insert(p.Name+cityFrag+d.Name, d.Code)
				insert(d.Name, d.Code)
			}
		}
	}

	if collisions > 0 {
		slog.Debug("name collisions in region index", "collisions", collisions, "names", len(idx.names))
	}
	return idx
}
