package label

import (
	"Nutrition-Density-Backend/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var unitSuffix = regexp.MustCompile(`(?i)\s*(kcal|cal|mcg|µg|ug|mg|g|iu|%)$`)

// ParsePairs decodes the extractor output, which must be a JSON array of
// {"name", "value"} objects naming only known nutrients.
func ParsePairs(raw string) ([]domain.NutrientPair, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var pairs []domain.NutrientPair
	if err := dec.Decode(&pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after list", domain.ErrExtractionParse)
	}
	if pairs == nil {
		return nil, fmt.Errorf("%w: expected a list of pairs", domain.ErrExtractionParse)
	}

	for _, p := range pairs {
		if !domain.IsNutrientName(p.Name) {
			return nil, fmt.Errorf("%w: unknown nutrient %q", domain.ErrExtractionParse, p.Name)
		}
	}
	return pairs, nil
}

// ParseValue converts a label value such as "80", "80mg" or "1,200 kcal" to
// a number. Anything still unparseable, non-finite or negative counts as 0.
func ParseValue(s string) float64 {
	v := strings.TrimSpace(s)
	v = unitSuffix.ReplaceAllString(v, "")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(v)

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func ToNutrientMap(pairs []domain.NutrientPair) domain.LabelResponse {
	out := make(domain.LabelResponse, len(pairs))
	for _, p := range pairs {
		out[p.Name] = ParseValue(p.Value)
	}
	return out
}
