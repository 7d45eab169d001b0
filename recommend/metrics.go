package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fertirec_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	oneHotMissTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fertirec_onehot_miss_total",
			Help: "Category values whose one-hot column was absent from the schema",
		},
		[]string{"domain"},
	)
)
