package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fixturelab/shenfen/pkg/region"
)

func init() {
	Register(&statsDivisionsAdapter{})
}

// statsDivisionsAdapter imports the five-level statistical division code
// table (12-digit codes) and folds it down to the four levels pkg/region
// works with.
type statsDivisionsAdapter struct{}

func (a *statsDivisionsAdapter) ID() string          { return "stats-divisions-cn" }
func (a *statsDivisionsAdapter) DatasetID() string   { return "divisions-cn" }
func (a *statsDivisionsAdapter) Description() string { return "NBS statistical division codes (province to township)" }
func (a *statsDivisionsAdapter) DefaultURL() string {
	return "https://raw.githubusercontent.com/modood/Administrative-divisions-of-China/master/dist/codes.csv"
}
func (a *statsDivisionsAdapter) License() string { return "WTFPL" }

func (a *statsDivisionsAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	csvPath := filepath.Join(dlDir, "codes.csv")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, csvPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	units, err := parseStatsCodes(csvPath)
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
		Version:   "2023",
		Source:    "NBS statistical division codes",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
	})
}

// parseStatsCodes reads code,name rows where code is the 12-digit
// statistical code. The trailing-zero pattern gives the level; rows below
// township granularity (villages) are dropped. First occurrence of a
// folded code wins, preserving file order.
func parseStatsCodes(path string) ([]region.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

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
		if len(raw) != 12 || name == "" {
			continue
		}

		var code string
		switch {
		case strings.HasSuffix(raw, "0000000000"):
			code = raw[:2]
		case strings.HasSuffix(raw, "00000000"):
			code = raw[:4]
		case strings.HasSuffix(raw, "000000"):
			code = raw[:6]
		case strings.HasSuffix(raw, "000"):
			code = raw[:9]
		default:
			continue // village level
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
