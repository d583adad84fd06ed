// CLAUDE:SUMMARY Immutable in-memory index of the province/city/district/township hierarchy, keyed by full-width codes.
package region

// Hierarchy is the immutable index over one loaded division dataset.
// It is built in a single pass over the raw unit list, with no name
// resolution involved; the name index layer (codeIndex) is derived from a
// completed Hierarchy afterwards. Each generator instance owns its own
// Hierarchy — there is no package-level shared state.
type Hierarchy struct {
	provinces map[string]Unit   // "11"
	cities    map[string]Unit   // "1101"
	districts map[string]Unit   // "110101"
	townships map[string][]Unit // district code -> townships in dataset order

	provinceOrder []Unit            // dataset order
	cityOrder     map[string][]Unit // province code -> cities in dataset order
	districtOrder map[string][]Unit // city code -> districts in dataset order
	provDistricts map[string][]Unit // province code -> all districts in dataset order
}

// NewHierarchy indexes a unit list. Units whose parent is absent from the
// list are still indexed by code; they simply never appear in ordered
// child listings of a known parent.
func NewHierarchy(units []Unit) *Hierarchy {
	h := &Hierarchy{
		provinces:     make(map[string]Unit),
		cities:        make(map[string]Unit),
		districts:     make(map[string]Unit),
		townships:     make(map[string][]Unit),
		cityOrder:     make(map[string][]Unit),
		districtOrder: make(map[string][]Unit),
		provDistricts: make(map[string][]Unit),
	}

	for _, u := range units {
		// Parentage is derived from the code prefix rather than trusting
		// the ParentCode field, so hand-built unit lists index correctly.
		parent := ParentOf(u.Code)
		switch LevelOf(u.Code) {
		case LevelProvince:
			if _, ok := h.provinces[u.Code]; ok {
				continue
			}
			h.provinces[u.Code] = u
			h.provinceOrder = append(h.provinceOrder, u)
		case LevelCity:
			if _, ok := h.cities[u.Code]; ok {
				continue
			}
			h.cities[u.Code] = u
			h.cityOrder[parent] = append(h.cityOrder[parent], u)
		case LevelDistrict:
			if _, ok := h.districts[u.Code]; ok {
				continue
			}
			h.districts[u.Code] = u
			h.districtOrder[parent] = append(h.districtOrder[parent], u)
			h.provDistricts[u.Code[:2]] = append(h.provDistricts[u.Code[:2]], u)
		case LevelTownship:
			h.townships[parent] = append(h.townships[parent], u)
		}
	}
	return h
}

// ProvinceName returns the display name for a 2-digit province code,
// "" when unknown.
func (h *Hierarchy) ProvinceName(code string) string {
	return h.provinces[code].Name
}

// CityInfo looks up a city by its province code and its own 2-digit code
// within that province.
func (h *Hierarchy) CityInfo(provinceCode, cityCode string) (Unit, bool) {
	u, ok := h.cities[provinceCode+cityCode]
	return u, ok
}

// District looks up a district by its 6-digit code.
func (h *Hierarchy) District(code string) (Unit, bool) {
	u, ok := h.districts[code]
	return u, ok
}

// TownshipsOf returns the townships under a district in dataset order,
// empty when the dataset carries none.
func (h *Hierarchy) TownshipsOf(districtCode string) []Unit {
	return h.townships[districtCode]
}

// Provinces returns all provinces in dataset order.
func (h *Hierarchy) Provinces() []Unit {
	return h.provinceOrder
}

// CitiesOf returns the cities of a province in dataset order.
func (h *Hierarchy) CitiesOf(provinceCode string) []Unit {
	return h.cityOrder[provinceCode]
}

// DistrictsOf returns the districts of a 4-digit city code in dataset order.
func (h *Hierarchy) DistrictsOf(cityCode string) []Unit {
	return h.districtOrder[cityCode]
}

// DistrictsInProvince returns every district of a 2-digit province code in
// dataset order, across all of its cities.
func (h *Hierarchy) DistrictsInProvince(provinceCode string) []Unit {
	return h.provDistricts[provinceCode]
}
