// CLAUDE:SUMMARY Gob serialization of parsed division unit lists for fast dataset loading.
package region

import (
	"encoding/gob"
	"fmt"
	"os"
)

// LoadGob deserializes a unit list from a gob-encoded file.
func LoadGob(path string) ([]Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var units []Unit
	if err := gob.NewDecoder(f).Decode(&units); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return units, nil
}

// SaveGob serializes a unit list to a gob-encoded file at path.
func SaveGob(units []Unit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(units); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}
