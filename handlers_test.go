package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fertirec/artifact"
	"fertirec/recommend"
)

// newTestApp wires an App around a deterministic in-memory bundle: the
// single tree predicts class 1 (DAP) for Loamy soil, class 0 (Urea)
// otherwise.
func newTestApp(t *testing.T) *App {
	t.Helper()

	columns := []string{
		"Temparature", "Humidity", "Moisture", "Nitrogen", "Potassium", "Phosphorous",
		"Soil_Type_Loamy", "Soil_Type_Sandy",
		"Crop_Type_Sugarcane", "Crop_Type_Wheat",
	}
	scale := make([]float64, len(columns))
	for i := range scale {
		scale[i] = 1
	}

	bundle := &artifact.Bundle{
		Model: &artifact.Forest{Trees: []artifact.Tree{
			{Root: &artifact.Node{
				Feature:   6, // Soil_Type_Loamy
				Threshold: 0.5,
				Left:      &artifact.Node{Leaf: true, Class: 0},
				Right:     &artifact.Node{Leaf: true, Class: 1},
			}},
		}},
		Scaler:  &artifact.Scaler{Mean: make([]float64, len(columns)), Scale: scale},
		Columns: columns,
		Mappings: artifact.Mappings{
			SoilType:   []artifact.CategoryEntry{{ID: 2, Name: "Loamy"}, {ID: 3, Name: "Sandy"}},
			CropType:   []artifact.CategoryEntry{{ID: 10, Name: "Sugarcane"}, {ID: 11, Name: "Wheat"}},
			Fertilizer: []artifact.CategoryEntry{{ID: 0, Name: "Urea"}, {ID: 1, Name: "DAP"}},
		},
	}

	log := zap.NewNop()
	svc, err := recommend.NewService(bundle, log)
	require.NoError(t, err)

	return &App{cfg: Config{Port: "8080"}, log: log, bundle: bundle, svc: svc}
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleRoot(t *testing.T) {
	rec := doRequest(t, newTestApp(t).routes(), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp messageResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to the Fertilizer Recommendation API!", resp.Message)
}

func TestHandleHealthz(t *testing.T) {
	rec := doRequest(t, newTestApp(t).routes(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCategories_OrderIsStable(t *testing.T) {
	h := newTestApp(t).routes()

	first := doRequest(t, h, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, first.Code)

	var resp categoriesResp
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	require.Len(t, resp.SoilTypes, 2)
	assert.Equal(t, "Loamy", resp.SoilTypes[0].Name)
	assert.Equal(t, "Sandy", resp.SoilTypes[1].Name)
	assert.Equal(t, "Sugarcane", resp.CropTypes[0].Name)

	second := doRequest(t, h, http.MethodGet, "/categories", "")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleRecommend(t *testing.T) {
	h := newTestApp(t).routes()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantName   string
		wantDetail string
	}{
		{
			name: "loamy sugarcane",
			body: `{"Temparature": 34, "Humidity": 65, "Moisture": 54, "Soil_Type_ID": 2,
				"Crop_Type_ID": 10, "Nitrogen": 38, "Potassium": 0, "Phosphorous": 0}`,
			wantStatus: http.StatusOK,
			wantName:   "DAP",
		},
		{
			name: "sandy wheat",
			body: `{"Temparature": 26, "Humidity": 52, "Moisture": 38, "Soil_Type_ID": 3,
				"Crop_Type_ID": 11, "Nitrogen": 12, "Potassium": 0, "Phosphorous": 14}`,
			wantStatus: http.StatusOK,
			wantName:   "Urea",
		},
		{
			name: "unknown soil id",
			body: `{"Temparature": 34, "Humidity": 65, "Moisture": 54, "Soil_Type_ID": 999,
				"Crop_Type_ID": 10, "Nitrogen": 38, "Potassium": 0, "Phosphorous": 0}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid Soil Type or Crop Type ID provided.",
		},
		{
			name:       "missing fields",
			body:       `{"Temparature": 34}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "non-integer field",
			body: `{"Temparature": "hot", "Humidity": 65, "Moisture": 54, "Soil_Type_ID": 2,
				"Crop_Type_ID": 10, "Nitrogen": 38, "Potassium": 0, "Phosphorous": 0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/recommend", tc.body)
			require.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantName != "" {
				var resp recommendResp
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantName, resp.RecommendedFertilizer)
			}
			if tc.wantDetail != "" {
				var resp errorResp
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantDetail, resp.Detail)
			}
		})
	}
}

func TestHandleRecommend_Idempotent(t *testing.T) {
	h := newTestApp(t).routes()
	body := `{"Temparature": 34, "Humidity": 65, "Moisture": 54, "Soil_Type_ID": 2,
		"Crop_Type_ID": 10, "Nitrogen": 38, "Potassium": 0, "Phosphorous": 0}`

	first := doRequest(t, h, http.MethodPost, "/recommend", body)
	second := doRequest(t, h, http.MethodPost, "/recommend", body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleModelInfo(t *testing.T) {
	rec := doRequest(t, newTestApp(t).routes(), http.MethodGet, "/model/info", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp modelInfoResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Features)
	assert.Equal(t, 1, resp.Trees)
	assert.Equal(t, 1.0, resp.MaxTreeDepth)
	assert.Equal(t, 2, resp.SoilTypes)
	assert.Equal(t, 2, resp.CropTypes)
	assert.Equal(t, 2, resp.Fertilizers)
}

func TestOpenAPIServed(t *testing.T) {
	rec := doRequest(t, newTestApp(t).routes(), http.MethodGet, "/api/openapi.yaml", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fertilizer Recommendation API")
}
