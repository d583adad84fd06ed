package region

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

//go:embed data/divisions.csv
var builtinCSV []byte

// Manifest describes an external division dataset: its source, version and
// how to read the data file.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Version   string     `yaml:"version" json:"version"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the CSV layout of the data file.
type FormatSpec struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	HasHeader bool   `yaml:"has_header"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		m.DataFile = "data.csv"
	}
	return &m, nil
}

// LoadBuiltin parses the embedded division table shipped with the module.
func LoadBuiltin() ([]Unit, error) {
	return parseCSV(bytes.NewReader(builtinCSV), FormatSpec{HasHeader: true})
}

// LoadDataset reads a dataset directory containing a manifest.yaml plus a
// data file. A gob data file takes priority over CSV.
func LoadDataset(dir string) ([]Unit, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		units, err := LoadGob(gobPath)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", manifest.ID, err)
		}
		return units, nil
	}

	f, err := os.Open(filepath.Join(dir, manifest.DataFile))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: open data file: %w", manifest.ID, err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest. Division
	// tables redistributed from Chinese government sites are often GBK.
	var reader io.Reader = f
	if enc := manifest.Format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: unsupported encoding %q: %w", manifest.ID, enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	units, err := parseCSV(reader, manifest.Format)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", manifest.ID, err)
	}
	return units, nil
}

// parseCSV reads code,name rows in file order. Rows whose code has an
// unrecognized width or non-digit characters are skipped and counted.
func parseCSV(reader io.Reader, format FormatSpec) ([]Unit, error) {
	r := csv.NewReader(reader)
	if format.Delimiter != "" {
		r.Comma = []rune(format.Delimiter)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	if format.HasHeader {
		if _, err := r.Read(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	var units []Unit
	var skipped int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			skipped++
			continue
		}

		code := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if name == "" || LevelOf(code) == 0 || !isDigits(code) {
			skipped++
			continue
		}
		units = append(units, Unit{Code: code, Name: name, ParentCode: ParentOf(code)})
	}

	if skipped > 0 {
		slog.Warn("division rows skipped", "skipped", skipped, "loaded", len(units))
	}
	return units, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
