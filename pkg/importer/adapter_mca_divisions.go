package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/fixturelab/shenfen/pkg/region"
)

func init() {
	Register(&mcaDivisionsAdapter{})
}

// mcaDivisionsAdapter imports the MCA county-level-and-above code table
// (6-digit codes, GBK-encoded CSV redistributions). It yields provinces,
// cities and districts; township data comes from the stats adapter.
type mcaDivisionsAdapter struct{}

func (a *mcaDivisionsAdapter) ID() string          { return "mca-divisions-cn" }
func (a *mcaDivisionsAdapter) DatasetID() string   { return "divisions-cn" }
func (a *mcaDivisionsAdapter) Description() string { return "MCA county-level and above division codes" }
func (a *mcaDivisionsAdapter) DefaultURL() string {
	return "https://raw.githubusercontent.com/mumuy/data_location/master/data/list.csv"
}
func (a *mcaDivisionsAdapter) License() string { return "MIT" }

func (a *mcaDivisionsAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath := filepath.Join(dlDir, "divisions.csv")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, csvPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	units, err := parseMCADivisions(csvPath, "gbk")
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	datasetDir := filepath.Join(outputDir, a.DatasetID())
	if err := ensureDir(datasetDir); err != nil {
		return err
	}

	if err := region.SaveGob(units, filepath.Join(datasetDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}

	return writeManifest(datasetDir, &region.Manifest{
		ID:        a.DatasetID(),
		Version:   "2023-07",
		Source:    "MCA division codes",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
	})
}

// parseMCADivisions reads 6-digit code,name rows, transcoding from the
// given encoding. Codes ending "0000" are provinces, "00" cities, the rest
// districts; the full-width code is folded accordingly.
func parseMCADivisions(path, encoding string) ([]region.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if encoding != "" {
		e, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var units []region.Unit
	seen := make(map[string]bool)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) < 2 {
			continue
		}

		raw := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if len(raw) != 6 || name == "" {
			continue
		}

		var code string
		switch {
		case strings.HasSuffix(raw, "0000"):
			code = raw[:2]
		case strings.HasSuffix(raw, "00"):
			code = raw[:4]
		default:
			code = raw
		}

		if seen[code] || region.LevelOf(code) == 0 {
			continue
		}
		seen[code] = true
		units = append(units, region.Unit{Code: code, Name: name, ParentCode: region.ParentOf(code)})
	}

	fmt.Printf("  %d division units\n", len(units))
	return units, nil
}
