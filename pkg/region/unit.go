// Package region holds the administrative division reference data and the
// name-to-code resolution engine built on top of it.
package region

// Level of an administrative unit within the division hierarchy.
type Level int

const (
	LevelProvince Level = iota + 1
	LevelCity
	LevelDistrict
	LevelTownship
)

// Unit is one administrative division. Code is the full-width code for the
// unit's level: 2 digits for a province, 4 for a city, 6 for a district and
// 9 for a township, so every code is unique nationally and embeds its parent
// as a prefix. ParentCode is empty for provinces.
type Unit struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ParentCode string `json:"parent_code,omitempty"`
}

// LevelOf derives the hierarchy level from the code width.
// Returns 0 for an unrecognized width.
func LevelOf(code string) Level {
	switch len(code) {
	case 2:
		return LevelProvince
	case 4:
		return LevelCity
	case 6:
		return LevelDistrict
	case 9:
		return LevelTownship
	}
	return 0
}

// ParentOf returns the code of the containing unit, or "" for provinces.
// Parentage is fully determined by the code prefix.
func ParentOf(code string) string {
	switch len(code) {
	case 4:
		return code[:2]
	case 6:
		return code[:4]
	case 9:
		return code[:6]
	}
	return ""
}
