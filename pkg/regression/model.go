package regression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrFeatureMismatch = errors.New("feature vector does not match model")
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

// Model scores a fixed-order feature vector. Implementations are loaded once
// and shared across requests; they must not mutate state in Predict.
type Model interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// LinearModel is an exported ordinary least squares regression:
// intercept + sum(coefficients[i] * features[i]).
type LinearModel struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// ParseLinearModel decodes a JSON artifact and checks it was trained on
// exactly the expected features, in order.
func ParseLinearModel(data []byte, expected []string) (*LinearModel, error) {
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	if len(m.Coefficients) != len(expected) {
		return nil, fmt.Errorf("%w: %d coefficients, want %d", ErrInvalidArtifact, len(m.Coefficients), len(expected))
	}
	if len(m.FeatureNames) != len(expected) {
		return nil, fmt.Errorf("%w: %d feature names, want %d", ErrInvalidArtifact, len(m.FeatureNames), len(expected))
	}
	for i, name := range expected {
		if m.FeatureNames[i] != name {
			return nil, fmt.Errorf("%w: feature %d is %q, want %q", ErrInvalidArtifact, i, m.FeatureNames[i], name)
		}
	}
	for i, c := range m.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", ErrInvalidArtifact, i)
		}
	}

	return &m, nil
}

func (m *LinearModel) Predict(ctx context.Context, features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrFeatureMismatch, len(features), len(m.Coefficients))
	}

	sum := m.Intercept
	for i, x := range features {
		sum += m.Coefficients[i] * x
	}
	return sum, nil
}
