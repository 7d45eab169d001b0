package main

import (
	"go.uber.org/zap"

	"fertirec/artifact"
	"fertirec/recommend"
)

type App struct {
	cfg    Config
	log    *zap.Logger
	bundle *artifact.Bundle
	svc    *recommend.Service
}

// newApp loads the artifact bundle and wires the recommendation service.
// Anything failing here is fatal: a half-initialized model server must not
// accept traffic.
func newApp(cfg Config, log *zap.Logger) (*App, error) {
	bundle, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		return nil, err
	}
	svc, err := recommend.NewService(bundle, log)
	if err != nil {
		return nil, err
	}

	log.Info("artifacts loaded",
		zap.Int("columns", len(bundle.Columns)),
		zap.Int("trees", len(bundle.Model.Trees)),
		zap.Int("soil_types", len(bundle.Mappings.SoilType)),
		zap.Int("crop_types", len(bundle.Mappings.CropType)),
		zap.Int("fertilizers", len(bundle.Mappings.Fertilizer)),
	)

	return &App{
		cfg:    cfg,
		log:    log,
		bundle: bundle,
		svc:    svc,
	}, nil
}
