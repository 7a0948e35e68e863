package label

import (
	"Nutrition-Density-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const extractionPrompt = `You read the text of a nutrition facts label and map it onto a fixed set of nutrient names.
Allowed names: %s.
Return a JSON list of objects {"name": <allowed name>, "value": <number as a string, no units>}.
Include only nutrients present on the label. Convert "Calories" or "Energy" to Caloric_Value, "Total Carbohydrate" to Carbohydrates, "Total Sugars" to Sugars, "Dietary Fiber" to Dietary_Fiber and "Phosphorus" to Phosporus.

Example 1
Label: Nutrition Facts Serving size 1 cup Calories 250 Total Fat 12g Sodium 470mg Total Carbohydrate 31g Dietary Fiber 0g Total Sugars 5g Protein 5g Calcium 260mg
Answer: [{"name": "Caloric_Value", "value": "250"}, {"name": "Sodium", "value": "470"}, {"name": "Carbohydrates", "value": "31"}, {"name": "Dietary_Fiber", "value": "0"}, {"name": "Sugars", "value": "5"}, {"name": "Protein", "value": "5"}, {"name": "Calcium", "value": "260"}]

Example 2
Label: Energy 120 kcal Protein 3.2 g Cholesterol 10mg Vitamin C 6mg Iron 0.8mg
Answer: [{"name": "Caloric_Value", "value": "120"}, {"name": "Protein", "value": "3.2"}, {"name": "Cholesterol", "value": "10"}, {"name": "Vitamin_C", "value": "6"}, {"name": "Iron", "value": "0.8"}]

Label: %s
Answer:`

type (
	// NutrientExtractor maps free label text onto (name, value) pairs.
	NutrientExtractor interface {
		Extract(ctx context.Context, text string) ([]domain.NutrientPair, error)
	}

	GeminiConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	geminiExtractor struct {
		cfg        GeminiConfig
		httpClient *http.Client
	}
)

func NewGeminiExtractor(cfg GeminiConfig, httpClient *http.Client) NutrientExtractor {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &geminiExtractor{cfg: cfg, httpClient: httpClient}
}

func buildPrompt(text string) string {
	return fmt.Sprintf(extractionPrompt, strings.Join(domain.NutrientNames, ", "), text)
}

// responseSchema constrains the model to a list of {name, value} objects with
// name drawn from the nutrient set.
func responseSchema() map[string]any {
	return map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"name": map[string]any{
					"type":   "STRING",
					"format": "enum",
					"enum":   domain.NutrientNames,
				},
				"value": map[string]any{"type": "STRING"},
			},
			"required": []string{"name", "value"},
		},
	}
}

func (g *geminiExtractor) Extract(ctx context.Context, text string) ([]domain.NutrientPair, error) {
	if g.cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if g.cfg.Model == "" {
		return nil, fmt.Errorf("GEMINI_MODEL not set")
	}

	geminiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimSuffix(g.cfg.BaseURL, "/"), g.cfg.Model, g.cfg.APIKey)

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": buildPrompt(text)},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":      0.1,
			"topP":             0.8,
			"topK":             40,
			"responseMimeType": "application/json",
			"responseSchema":   responseSchema(),
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeminiProcessingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: gemini API error: %s - %s", domain.ErrGeminiProcessingFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", domain.ErrExtractionParse)
	}

	return ParsePairs(geminiResp.Candidates[0].Content.Parts[0].Text)
}
