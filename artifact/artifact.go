// Package artifact loads the serialized objects the offline training
// pipeline exports: the classifier, the fitted scaler, the feature-column
// schema, and the category mappings. Everything here is read once at
// startup and shared read-only by all requests.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names inside the artifact directory, one per exported object.
const (
	ModelFile    = "model.json"
	ScalerFile   = "scaler.json"
	ColumnsFile  = "columns.json"
	MappingsFile = "mappings.json"
)

// CategoryEntry is one name/id pair of a category domain. Mappings are
// stored as ordered arrays, not objects, so the trainer's insertion order
// survives decoding.
type CategoryEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Mappings holds the three independent category domains.
type Mappings struct {
	SoilType   []CategoryEntry `json:"soil_type_map"`
	CropType   []CategoryEntry `json:"crop_type_map"`
	Fertilizer []CategoryEntry `json:"fertilizer_map"`
}

// Bundle is the full set of runtime artifacts.
type Bundle struct {
	Model    *Forest
	Scaler   *Scaler
	Columns  []string
	Mappings Mappings
}

// Load reads all four artifact files from dir. Any missing or malformed
// file is a startup-fatal error; there is no partial bundle.
func Load(dir string) (*Bundle, error) {
	b := &Bundle{}

	if err := readJSON(dir, ModelFile, &b.Model); err != nil {
		return nil, err
	}
	if err := readJSON(dir, ScalerFile, &b.Scaler); err != nil {
		return nil, err
	}
	if err := readJSON(dir, ColumnsFile, &b.Columns); err != nil {
		return nil, err
	}
	if err := readJSON(dir, MappingsFile, &b.Mappings); err != nil {
		return nil, err
	}

	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("artifact bundle %s: %w", dir, err)
	}
	return b, nil
}

func readJSON(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("load artifact %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", name, err)
	}
	return nil
}

// validate cross-checks the bundle: the scaler and every tree split must
// line up with the column schema. A mismatch here would not error at
// request time, it would silently mis-predict, so it must refuse to start.
func (b *Bundle) validate() error {
	if len(b.Columns) == 0 {
		return fmt.Errorf("column schema is empty")
	}
	if err := b.Scaler.check(len(b.Columns)); err != nil {
		return err
	}
	if err := b.Model.check(len(b.Columns)); err != nil {
		return err
	}
	if len(b.Mappings.SoilType) == 0 || len(b.Mappings.CropType) == 0 || len(b.Mappings.Fertilizer) == 0 {
		return fmt.Errorf("mappings: every category domain must be non-empty")
	}
	return nil
}
