package importer

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/fixturelab/shenfen/pkg/region"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRegistry(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatalf("len(All()) = %d, want the built-in adapters", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID() >= all[i].ID() {
			t.Fatalf("All() not sorted: %q before %q", all[i-1].ID(), all[i].ID())
		}
	}

	a, err := Get("stats-divisions-cn")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.DatasetID() != "divisions-cn" {
		t.Errorf("DatasetID = %q, want divisions-cn", a.DatasetID())
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope): no error")
	}
}

func TestParseStatsCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.csv")
	writeFile(t, path, `code,name
110000000000,北京市
110100000000,市辖区
110101000000,东城区
110101001000,东华门街道
110101001001,多福巷社区
130000000000,河北省
130100000000,石家庄市
130102000000,长安区
badrow
1234,短码
`)

	units, err := parseStatsCodes(path)
	if err != nil {
		t.Fatalf("parseStatsCodes: %v", err)
	}

	want := []region.Unit{
		{Code: "11", Name: "北京市"},
		{Code: "1101", Name: "市辖区", ParentCode: "11"},
		{Code: "110101", Name: "东城区", ParentCode: "1101"},
		{Code: "110101001", Name: "东华门街道", ParentCode: "110101"},
		{Code: "13", Name: "河北省"},
		{Code: "1301", Name: "石家庄市", ParentCode: "13"},
		{Code: "130102", Name: "长安区", ParentCode: "1301"},
	}
	if len(units) != len(want) {
		t.Fatalf("len(units) = %d, want %d: %+v", len(units), len(want), units)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Errorf("units[%d] = %+v, want %+v", i, units[i], want[i])
		}
	}
}

func TestParseStatsCodes_FirstOccurrenceWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.csv")
	writeFile(t, path, `code,name
110000000000,北京市
110000000000,重复的北京
`)

	units, err := parseStatsCodes(path)
	if err != nil {
		t.Fatalf("parseStatsCodes: %v", err)
	}
	if len(units) != 1 || units[0].Name != "北京市" {
		t.Errorf("units = %+v, want single 北京市", units)
	}
}

func TestParseMCADivisions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divisions.csv")
	writeFile(t, path, `110000,北京市
110100,市辖区
110101,东城区
130000,河北省
130100,石家庄市
130102,长安区
`)

	units, err := parseMCADivisions(path, "")
	if err != nil {
		t.Fatalf("parseMCADivisions: %v", err)
	}

	want := []region.Unit{
		{Code: "11", Name: "北京市"},
		{Code: "1101", Name: "市辖区", ParentCode: "11"},
		{Code: "110101", Name: "东城区", ParentCode: "1101"},
		{Code: "13", Name: "河北省"},
		{Code: "1301", Name: "石家庄市", ParentCode: "13"},
		{Code: "130102", Name: "长安区", ParentCode: "1301"},
	}
	if len(units) != len(want) {
		t.Fatalf("len(units) = %d, want %d: %+v", len(units), len(want), units)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Errorf("units[%d] = %+v, want %+v", i, units[i], want[i])
		}
	}
}

func TestParseMCADivisions_GBK(t *testing.T) {
	enc, err := htmlindex.Get("gbk")
	if err != nil {
		t.Fatalf("htmlindex.Get: %v", err)
	}
	raw, err := enc.NewEncoder().String("110000,北京市\n110101,东城区\n")
	if err != nil {
		t.Fatalf("encode to GBK: %v", err)
	}

	path := filepath.Join(t.TempDir(), "divisions.csv")
	writeFile(t, path, raw)

	units, err := parseMCADivisions(path, "gbk")
	if err != nil {
		t.Fatalf("parseMCADivisions: %v", err)
	}
	if len(units) != 2 || units[0].Name != "北京市" || units[1].Name != "东城区" {
		t.Errorf("units = %+v, want transcoded names", units)
	}
}

func TestWriteManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := &region.Manifest{
		ID:       "divisions-cn",
		Version:  "2023",
		Source:   "test",
		License:  "MIT",
		DataFile: "data.gob",
	}
	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("writeManifest: %v", err)
	}

	got, err := region.LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if got.ID != m.ID || got.DataFile != m.DataFile || got.Version != m.Version {
		t.Errorf("manifest = %+v, want %+v", got, m)
	}
}

func TestSourceDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.db")
	sdb, err := OpenSourceDB(path)
	if err != nil {
		t.Fatalf("OpenSourceDB: %v", err)
	}
	defer sdb.Close()

	if err := sdb.Seed(All()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	url, err := sdb.GetURL("stats-divisions-cn")
	if err != nil {
		t.Fatalf("GetURL: %v", err)
	}
	if url == "" {
		t.Fatal("seeded URL empty")
	}

	if err := sdb.SetURL("stats-divisions-cn", "https://example.com/codes.csv"); err != nil {
		t.Fatalf("SetURL: %v", err)
	}
	url, err = sdb.GetURL("stats-divisions-cn")
	if err != nil {
		t.Fatalf("GetURL: %v", err)
	}
	if url != "https://example.com/codes.csv" {
		t.Errorf("url = %q, want the override", url)
	}

	// Re-seeding must not clobber the manual override.
	if err := sdb.Seed(All()); err != nil {
		t.Fatalf("Seed again: %v", err)
	}
	url, _ = sdb.GetURL("stats-divisions-cn")
	if url != "https://example.com/codes.csv" {
		t.Errorf("url after reseed = %q, want the override kept", url)
	}

	if err := sdb.UpdateCheck("stats-divisions-cn", 200, ""); err != nil {
		t.Fatalf("UpdateCheck: %v", err)
	}

	sources, err := sdb.ListSources()
	if err != nil {
		t.Fatalf("ListSources: %v", err)
	}
	if len(sources) != len(All()) {
		t.Fatalf("len(sources) = %d, want %d", len(sources), len(All()))
	}
	var found bool
	for _, src := range sources {
		if src.AdapterID != "stats-divisions-cn" {
			continue
		}
		found = true
		if src.LastStatus == nil || *src.LastStatus != 200 {
			t.Errorf("LastStatus = %v, want 200", src.LastStatus)
		}
		if src.LastError != nil {
			t.Errorf("LastError = %v, want nil", *src.LastError)
		}
	}
	if !found {
		t.Error("stats-divisions-cn not listed")
	}
}

func TestSourceDB_SetURLUnknownAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.db")
	sdb, err := OpenSourceDB(path)
	if err != nil {
		t.Fatalf("OpenSourceDB: %v", err)
	}
	defer sdb.Close()

	if err := sdb.SetURL("nope", "https://example.com"); err == nil {
		t.Error("SetURL on unknown adapter: no error")
	}
}
