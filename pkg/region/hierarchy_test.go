package region

import "testing"

func loadTestHierarchy(t *testing.T) *Hierarchy {
	t.Helper()
	units, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	return NewHierarchy(units)
}

func TestHierarchy_Lookups(t *testing.T) {
	h := loadTestHierarchy(t)

	if got := h.ProvinceName("11"); got != "北京市" {
		t.Errorf("ProvinceName(11) = %q, want 北京市", got)
	}
	if got := h.ProvinceName("99"); got != "" {
		t.Errorf("ProvinceName(99) = %q, want empty", got)
	}

	city, ok := h.CityInfo("13", "01")
	if !ok || city.Name != "石家庄市" {
		t.Errorf("CityInfo(13, 01) = %+v, %v, want 石家庄市", city, ok)
	}
	if _, ok := h.CityInfo("13", "99"); ok {
		t.Error("CityInfo(13, 99) found, want miss")
	}

	d, ok := h.District("110108")
	if !ok || d.Name != "海淀区" {
		t.Errorf("District(110108) = %+v, %v, want 海淀区", d, ok)
	}

	townships := h.TownshipsOf("110101")
	if len(townships) == 0 {
		t.Fatal("TownshipsOf(110101) empty")
	}
	if townships[0].Name != "东华门街道" {
		t.Errorf("first township = %q, want 东华门街道", townships[0].Name)
	}
	if got := h.TownshipsOf("130102"); len(got) != 0 {
		t.Errorf("TownshipsOf(130102) = %d units, want 0", len(got))
	}
}

func TestHierarchy_Ordering(t *testing.T) {
	h := loadTestHierarchy(t)

	provinces := h.Provinces()
	if len(provinces) != 34 {
		t.Fatalf("len(Provinces()) = %d, want 34", len(provinces))
	}
	if provinces[0].Code != "11" || provinces[len(provinces)-1].Code != "82" {
		t.Errorf("province order = %s..%s, want 11..82", provinces[0].Code, provinces[len(provinces)-1].Code)
	}

	cities := h.CitiesOf("13")
	if len(cities) != 2 || cities[0].Name != "石家庄市" || cities[1].Name != "唐山市" {
		t.Fatalf("CitiesOf(13) = %+v, want 石家庄市, 唐山市 in order", cities)
	}

	districts := h.DistrictsOf("1301")
	if len(districts) == 0 || districts[0].Code != "130101" {
		t.Fatalf("DistrictsOf(1301) = %+v, want 130101 first", districts)
	}

	all := h.DistrictsInProvince("13")
	if len(all) != len(h.DistrictsOf("1301"))+len(h.DistrictsOf("1302")) {
		t.Errorf("DistrictsInProvince(13) = %d districts, want sum of both cities", len(all))
	}
}

func TestHierarchy_ParentDerivedFromCode(t *testing.T) {
	// ParentCode left empty on purpose: indexing must not depend on it.
	units := []Unit{
		{Code: "98", Name: "某省"},
		{Code: "9801", Name: "某市"},
		{Code: "980102", Name: "某区"},
		{Code: "980102001", Name: "某街道"},
	}
	h := NewHierarchy(units)

	if got := h.CitiesOf("98"); len(got) != 1 || got[0].Name != "某市" {
		t.Errorf("CitiesOf(98) = %+v, want 某市", got)
	}
	if got := h.DistrictsOf("9801"); len(got) != 1 || got[0].Name != "某区" {
		t.Errorf("DistrictsOf(9801) = %+v, want 某区", got)
	}
	if got := h.TownshipsOf("980102"); len(got) != 1 || got[0].Name != "某街道" {
		t.Errorf("TownshipsOf(980102) = %+v, want 某街道", got)
	}
}

func TestHierarchy_DuplicateCodesKeepFirst(t *testing.T) {
	units := []Unit{
		{Code: "98", Name: "甲省"},
		{Code: "98", Name: "乙省"},
	}
	h := NewHierarchy(units)
	if got := h.ProvinceName("98"); got != "甲省" {
		t.Errorf("ProvinceName(98) = %q, want 甲省", got)
	}
	if got := len(h.Provinces()); got != 1 {
		t.Errorf("len(Provinces()) = %d, want 1", got)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		code string
		want Level
	}{
		{"11", LevelProvince},
		{"1101", LevelCity},
		{"110101", LevelDistrict},
		{"110101001", LevelTownship},
		{"110", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.code); got != tt.want {
			t.Errorf("LevelOf(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestParentOf(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"11", ""},
		{"1101", "11"},
		{"110101", "1101"},
		{"110101001", "110101"},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := ParentOf(tt.code); got != tt.want {
			t.Errorf("ParentOf(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
