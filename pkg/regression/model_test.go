package regression

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFeatures = []string{"Caloric_Value", "Sugars", "Protein"}

func TestParseLinearModel(t *testing.T) {
	data := []byte(`{"feature_names": ["Caloric_Value", "Sugars", "Protein"], "coefficients": [0.1, -0.5, 2], "intercept": 3}`)

	m, err := ParseLinearModel(data, testFeatures)
	require.NoError(t, err)

	got, err := m.Predict(context.Background(), []float64{52, 10, 1})
	require.NoError(t, err)
	assert.InDelta(t, 3+5.2-5+2, got, 1e-9)
}

func TestParseLinearModel_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `pickle`},
		{name: "too few coefficients", data: `{"feature_names": ["Caloric_Value", "Sugars", "Protein"], "coefficients": [1, 2]}`},
		{name: "wrong order", data: `{"feature_names": ["Sugars", "Caloric_Value", "Protein"], "coefficients": [1, 2, 3]}`},
		{name: "missing names", data: `{"coefficients": [1, 2, 3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLinearModel([]byte(tt.data), testFeatures)
			assert.ErrorIs(t, err, ErrInvalidArtifact)
		})
	}
}

func TestLinearModel_FeatureMismatch(t *testing.T) {
	m := &LinearModel{FeatureNames: testFeatures, Coefficients: []float64{1, 2, 3}}

	_, err := m.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, ErrFeatureMismatch)
}

func TestRemoteModel_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Features []float64 `json:"features"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []float64{1, 2, 3}, body.Features)

		_ = json.NewEncoder(w).Encode(map[string]float64{"prediction": 0.42})
	}))
	defer server.Close()

	m := NewRemoteModel(server.URL, time.Second)
	got, err := m.Predict(context.Background(), []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.42, got)
}

func TestRemoteModel_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewRemoteModel(server.URL, time.Second).Predict(context.Background(), []float64{1})
	assert.Error(t, err)
}

func TestRemoteModel_MissingPrediction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewRemoteModel(server.URL, time.Second).Predict(context.Background(), []float64{1})
	assert.Error(t, err)
}

type mockStore struct {
	data map[string][]byte
}

func (m *mockStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.data[bucket+"/"+key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoad(t *testing.T) {
	artifact := []byte(`{"feature_names": ["Caloric_Value", "Sugars", "Protein"], "coefficients": [1, 1, 1], "intercept": 0}`)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, artifact, 0o600))

	t.Run("local file", func(t *testing.T) {
		m, source, err := Load(context.Background(), Source{Path: path}, testFeatures, nil)
		require.NoError(t, err)
		assert.Equal(t, path, source)
		assert.IsType(t, &LinearModel{}, m)
	})

	t.Run("s3 object", func(t *testing.T) {
		store := &mockStore{data: map[string][]byte{"models/linear.json": artifact}}
		m, _, err := Load(context.Background(), Source{Path: "s3://models/linear.json"}, testFeatures, store)
		require.NoError(t, err)
		assert.IsType(t, &LinearModel{}, m)
	})

	t.Run("s3 without store", func(t *testing.T) {
		_, _, err := Load(context.Background(), Source{Path: "s3://models/linear.json"}, testFeatures, nil)
		assert.Error(t, err)
	})

	t.Run("remote url wins", func(t *testing.T) {
		m, source, err := Load(context.Background(), Source{Path: path, URL: "http://model:9000/predict"}, testFeatures, nil)
		require.NoError(t, err)
		assert.Equal(t, "http://model:9000/predict", source)
		assert.IsType(t, &RemoteModel{}, m)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(context.Background(), Source{Path: filepath.Join(t.TempDir(), "nope.json")}, testFeatures, nil)
		assert.Error(t, err)
	})
}
