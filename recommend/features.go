package recommend

import (
	"fmt"

	"go.uber.org/zap"
)

// Column name prefixes for the one-hot encoded categorical features.
const (
	soilColPrefix = "Soil_Type_"
	cropColPrefix = "Crop_Type_"
)

// numericColumns are the measurement columns the model was trained on.
// "Temparature" keeps the training data's spelling; renaming it would
// break schema alignment.
var numericColumns = [...]string{
	"Temparature", "Humidity", "Moisture", "Nitrogen", "Potassium", "Phosphorous",
}

// Input is a decoded prediction request.
type Input struct {
	Temparature int
	Humidity    int
	Moisture    int
	SoilTypeID  int
	CropTypeID  int
	Nitrogen    int
	Potassium   int
	Phosphorous int
}

// Builder reconstructs the model-facing feature row: one value per schema
// column, in the exact order the scaler and classifier were fit on.
type Builder struct {
	columns []string
	index   map[string]int
	log     *zap.Logger
}

// NewBuilder indexes the column schema. Every numeric column must be
// present; a miss is a configuration error, not something to discover one
// request at a time.
func NewBuilder(columns []string, log *zap.Logger) (*Builder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Builder{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		log:     log,
	}
	for i, c := range columns {
		b.index[c] = i
	}
	for _, c := range numericColumns {
		if _, ok := b.index[c]; !ok {
			return nil, fmt.Errorf("column schema is missing numeric column %q", c)
		}
	}
	return b, nil
}

// Build produces a single zero-initialized row in schema order, assigns
// the six measurements, and sets the soil and crop one-hot columns to 1.
//
// A one-hot column absent from the schema is NOT an error: the category
// stays encoded all-zero, matching how the model was trained on a fixed
// vocabulary. Each skip is counted and logged so schema drift stays
// visible.
func (b *Builder) Build(in Input, soilName, cropName string) []float64 {
	row := make([]float64, len(b.columns))
	row[b.index["Temparature"]] = float64(in.Temparature)
	row[b.index["Humidity"]] = float64(in.Humidity)
	row[b.index["Moisture"]] = float64(in.Moisture)
	row[b.index["Nitrogen"]] = float64(in.Nitrogen)
	row[b.index["Potassium"]] = float64(in.Potassium)
	row[b.index["Phosphorous"]] = float64(in.Phosphorous)

	b.setOneHot(row, "soil", soilColPrefix+soilName)
	b.setOneHot(row, "crop", cropColPrefix+cropName)
	return row
}

func (b *Builder) setOneHot(row []float64, domain, col string) {
	i, ok := b.index[col]
	if !ok {
		oneHotMissTotal.WithLabelValues(domain).Inc()
		b.log.Debug("one-hot column not in schema, encoding all-zero",
			zap.String("domain", domain), zap.String("column", col))
		return
	}
	row[i] = 1
}

// Columns returns the schema the builder was constructed with.
func (b *Builder) Columns() []string { return b.columns }
