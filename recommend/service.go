// Package recommend turns validated fertilizer-request input into a
// recommended fertilizer name using the artifacts loaded at startup.
package recommend

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fertirec/artifact"
)

// Request-scoped failures, translated to status codes at the HTTP boundary.
var (
	// ErrInvalidCategory means Soil_Type_ID or Crop_Type_ID has no entry
	// in the reverse mapping. Client error.
	ErrInvalidCategory = errors.New("invalid category id")

	// ErrUnmappablePrediction means the model produced a class code with
	// no entry in the fertilizer mapping. Server error.
	ErrUnmappablePrediction = errors.New("unmappable prediction")
)

// Classifier is the trained model's prediction surface.
type Classifier interface {
	Predict(row []float64) int
}

// Transformer is the fitted scaler's transform surface.
type Transformer interface {
	Transform(row []float64) ([]float64, error)
}

// Service orchestrates mapper, builder, scaler and model. It holds only
// immutable state, so concurrent requests need no coordination.
type Service struct {
	soil    *Mapping
	crop    *Mapping
	fert    *Mapping
	builder *Builder
	scaler  Transformer
	model   Classifier
	log     *zap.Logger
}

// NewService wires a Service from a loaded artifact bundle. Mapping
// collisions and schema gaps surface here, at startup.
func NewService(b *artifact.Bundle, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	soil, err := NewMapping("soil", b.Mappings.SoilType)
	if err != nil {
		return nil, err
	}
	crop, err := NewMapping("crop", b.Mappings.CropType)
	if err != nil {
		return nil, err
	}
	fert, err := NewMapping("fertilizer", b.Mappings.Fertilizer)
	if err != nil {
		return nil, err
	}
	builder, err := NewBuilder(b.Columns, log)
	if err != nil {
		return nil, err
	}
	return &Service{
		soil:    soil,
		crop:    crop,
		fert:    fert,
		builder: builder,
		scaler:  b.Scaler,
		model:   b.Model,
		log:     log,
	}, nil
}

// Recommend reverse-maps the category ids, rebuilds the encoded feature
// row, scales it, and decodes the model's class prediction to a
// fertilizer name. Pure function of the immutable artifacts and the input.
func (s *Service) Recommend(in Input) (string, error) {
	soilName, ok := s.soil.Name(in.SoilTypeID)
	if !ok {
		recommendationsTotal.WithLabelValues("invalid_category").Inc()
		return "", fmt.Errorf("%w: soil type %d", ErrInvalidCategory, in.SoilTypeID)
	}
	cropName, ok := s.crop.Name(in.CropTypeID)
	if !ok {
		recommendationsTotal.WithLabelValues("invalid_category").Inc()
		return "", fmt.Errorf("%w: crop type %d", ErrInvalidCategory, in.CropTypeID)
	}

	row := s.builder.Build(in, soilName, cropName)
	scaled, err := s.scaler.Transform(row)
	if err != nil {
		recommendationsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	code := s.model.Predict(scaled)
	name, ok := s.fert.Name(code)
	if !ok {
		recommendationsTotal.WithLabelValues("unmappable").Inc()
		s.log.Warn("model predicted a class outside the fertilizer mapping", zap.Int("class", code))
		return "", fmt.Errorf("%w: class %d", ErrUnmappablePrediction, code)
	}

	recommendationsTotal.WithLabelValues("ok").Inc()
	return name, nil
}

// Categories lists the soil and crop domains in mapping-insertion order.
func (s *Service) Categories() (soil, crop []artifact.CategoryEntry) {
	return s.soil.Entries(), s.crop.Entries()
}

// FertilizerCount reports the size of the fertilizer domain.
func (s *Service) FertilizerCount() int { return s.fert.Len() }
