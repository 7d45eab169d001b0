package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"fertirec/recommend"
)

const maxBodyBytes = 1 << 20

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResp{Message: "Welcome to the Fertilizer Recommendation API!"})
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCategories enumerates the soil and crop domains in the order the
// trainer exported them.
func (a *App) handleCategories(w http.ResponseWriter, r *http.Request) {
	soil, crop := a.svc.Categories()
	writeJSON(w, http.StatusOK, categoriesResp{SoilTypes: soil, CropTypes: crop})
}

// handleModelInfo reports loaded-artifact shape for diagnostics.
func (a *App) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	depths := a.bundle.Model.Depths()
	mean, _ := stats.Mean(depths)
	max, _ := stats.Max(depths)

	writeJSON(w, http.StatusOK, modelInfoResp{
		Features:      len(a.bundle.Columns),
		Trees:         len(a.bundle.Model.Trees),
		MeanTreeDepth: mean,
		MaxTreeDepth:  max,
		SoilTypes:     len(a.bundle.Mappings.SoilType),
		CropTypes:     len(a.bundle.Mappings.CropType),
		Fertilizers:   a.svc.FertilizerCount(),
	})
}

// handleRecommend validates the payload shape, runs the prediction, and
// maps request-scoped failures to status codes.
func (a *App) handleRecommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	violations, err := validateRecommendBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if len(violations) > 0 {
		writeError(w, http.StatusBadRequest, strings.Join(violations, "; "))
		return
	}

	var req recommendReq
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	name, err := a.svc.Recommend(recommend.Input{
		Temparature: req.Temparature,
		Humidity:    req.Humidity,
		Moisture:    req.Moisture,
		SoilTypeID:  req.SoilTypeID,
		CropTypeID:  req.CropTypeID,
		Nitrogen:    req.Nitrogen,
		Potassium:   req.Potassium,
		Phosphorous: req.Phosphorous,
	})
	switch {
	case errors.Is(err, recommend.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "Invalid Soil Type or Crop Type ID provided.")
		return
	case errors.Is(err, recommend.ErrUnmappablePrediction):
		writeError(w, http.StatusInternalServerError, "Could not map prediction to a fertilizer name.")
		return
	case err != nil:
		a.log.Error("recommend failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, recommendResp{RecommendedFertilizer: name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResp{Detail: detail})
}
