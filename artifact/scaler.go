package artifact

import "fmt"

// Scaler is a fitted standard scaler: per-column mean and scale, aligned
// to the column schema the model was trained on.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform standardizes a single feature row to (x - mean) / scale.
// A zero scale entry (constant training column) passes the centered value
// through unscaled.
func (s *Scaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, fmt.Errorf("scaler: row has %d features, expected %d", len(row), len(s.Mean))
	}
	out := make([]float64, len(row))
	for j, x := range row {
		v := x - s.Mean[j]
		if s.Scale[j] != 0 {
			v /= s.Scale[j]
		}
		out[j] = v
	}
	return out, nil
}

func (s *Scaler) check(nFeatures int) error {
	if s == nil {
		return fmt.Errorf("scaler: missing")
	}
	if len(s.Mean) != nFeatures || len(s.Scale) != nFeatures {
		return fmt.Errorf("scaler: mean/scale lengths (%d/%d) do not match %d schema columns",
			len(s.Mean), len(s.Scale), nFeatures)
	}
	return nil
}
