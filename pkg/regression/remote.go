package regression

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteModel delegates scoring to a model server that accepts
// {"features": [...]} and answers {"prediction": x}.
type RemoteModel struct {
	url        string
	httpClient *http.Client
}

func NewRemoteModel(url string, timeout time.Duration) *RemoteModel {
	return &RemoteModel{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (m *RemoteModel) Predict(ctx context.Context, features []float64) (float64, error) {
	requestJSON, err := json.Marshal(map[string]any{"features": features})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("model server error: %s - %s", resp.Status, string(bodyBytes))
	}

	var out struct {
		Prediction *float64 `json:"prediction"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode model response: %w", err)
	}
	if out.Prediction == nil {
		return 0, fmt.Errorf("model response missing prediction")
	}
	return *out.Prediction, nil
}
