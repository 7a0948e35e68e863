package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OwnerAnonymous  = "anonymous"
	OwnerIdentified = "identified"

	ResultSuccess    = "success"
	ResultOCRError   = "ocr_error"
	ResultParseError = "parse_error"
	ResultLLMError   = "llm_error"
)

var (
	Predictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_predictions_total",
			Help: "Stored meal predictions, by owner kind.",
		},
		[]string{"owner"},
	)

	PredictionFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_prediction_failures_total",
			Help: "Regression model calls that failed.",
		},
	)

	LabelExtractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_label_extractions_total",
			Help: "Nutrition label extractions, by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(Predictions, PredictionFailures, LabelExtractions)
}
