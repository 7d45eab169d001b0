package main

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// recommendSchema is the boundary contract for POST /recommend: all eight
// fields required, all integers. Range validity is the caller's problem.
const recommendSchema = `{
	"type": "object",
	"required": [
		"Temparature", "Humidity", "Moisture", "Soil_Type_ID",
		"Crop_Type_ID", "Nitrogen", "Potassium", "Phosphorous"
	],
	"properties": {
		"Temparature":  {"type": "integer"},
		"Humidity":     {"type": "integer"},
		"Moisture":     {"type": "integer"},
		"Soil_Type_ID": {"type": "integer"},
		"Crop_Type_ID": {"type": "integer"},
		"Nitrogen":     {"type": "integer"},
		"Potassium":    {"type": "integer"},
		"Phosphorous":  {"type": "integer"}
	}
}`

var recommendSchemaLoader = gojsonschema.NewStringLoader(recommendSchema)

// validateRecommendBody checks the raw payload against the schema. The
// returned slice holds human-readable violations; err is non-nil only when
// the body is not valid JSON at all.
func validateRecommendBody(body []byte) ([]string, error) {
	result, err := gojsonschema.Validate(recommendSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return violations, nil
}
