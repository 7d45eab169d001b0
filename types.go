package main

import "fertirec/artifact"

// Request/response DTOs. Field names match the training data's column
// names exactly, misspelling included.

type recommendReq struct {
	Temparature int `json:"Temparature"`
	Humidity    int `json:"Humidity"`
	Moisture    int `json:"Moisture"`
	SoilTypeID  int `json:"Soil_Type_ID"`
	CropTypeID  int `json:"Crop_Type_ID"`
	Nitrogen    int `json:"Nitrogen"`
	Potassium   int `json:"Potassium"`
	Phosphorous int `json:"Phosphorous"`
}

type recommendResp struct {
	RecommendedFertilizer string `json:"recommended_fertilizer"`
}

type categoriesResp struct {
	SoilTypes []artifact.CategoryEntry `json:"soil_types"`
	CropTypes []artifact.CategoryEntry `json:"crop_types"`
}

type modelInfoResp struct {
	Features      int     `json:"features"`
	Trees         int     `json:"trees"`
	MeanTreeDepth float64 `json:"mean_tree_depth"`
	MaxTreeDepth  float64 `json:"max_tree_depth"`
	SoilTypes     int     `json:"soil_types"`
	CropTypes     int     `json:"crop_types"`
	Fertilizers   int     `json:"fertilizers"`
}

type messageResp struct {
	Message string `json:"message"`
}

// errorResp is the error envelope: {"detail": "..."}.
type errorResp struct {
	Detail string `json:"detail"`
}
