package label

import (
	"Nutrition-Density-Backend/domain"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs(`[{"name": "Caloric_Value", "value": "80"}, {"name": "Sodium", "value": "80mg"}]`)
	require.NoError(t, err)

	assert.Equal(t, []domain.NutrientPair{
		{Name: "Caloric_Value", Value: "80"},
		{Name: "Sodium", Value: "80mg"},
	}, pairs)
}

func TestParsePairs_Fenced(t *testing.T) {
	pairs, err := ParsePairs("```json\n[{\"name\": \"Protein\", \"value\": \"3\"}]\n```")
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestParsePairs_Empty(t *testing.T) {
	pairs, err := ParsePairs(`[]`)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestParsePairs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "prose", raw: "Sure! Here are the nutrients: Calories 80"},
		{name: "python literal", raw: `[('Caloric_Value', '80')]`},
		{name: "object not list", raw: `{"name": "Sodium", "value": "80"}`},
		{name: "null", raw: `null`},
		{name: "unknown nutrient", raw: `[{"name": "Trans_Fat", "value": "0"}]`},
		{name: "extra field", raw: `[{"name": "Sodium", "value": "80", "unit": "mg"}]`},
		{name: "numeric value", raw: `[{"name": "Sodium", "value": 80}]`},
		{name: "trailing data", raw: `[] []`},
		{name: "truncated", raw: `[{"name": "Sodium", "value": "8`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePairs(tt.raw)
			assert.ErrorIs(t, err, domain.ErrExtractionParse)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "80", want: 80},
		{in: " 3.5 ", want: 3.5},
		{in: "80mg", want: 80},
		{in: "12 g", want: 12},
		{in: "250kcal", want: 250},
		{in: "1,200 kcal", want: 1200},
		{in: "15%", want: 15},
		{in: "40 mcg", want: 40},
		{in: "trace", want: 0},
		{in: "", want: 0},
		{in: "<1g", want: 0},
		{in: "NaN", want: 0},
		{in: "Inf", want: 0},
		{in: "-infinity", want: 0},
		{in: "infinity mg", want: 0},
		{in: "-5mg", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.in))
		})
	}
}

func TestToNutrientMap_EncodesNonFiniteAsZero(t *testing.T) {
	got := ToNutrientMap([]domain.NutrientPair{
		{Name: "Sodium", Value: "NaN"},
		{Name: "Iron", Value: "Inf"},
		{Name: "Zinc", Value: "-2"},
	})

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Sodium": 0, "Iron": 0, "Zinc": 0}`, string(data))
}

func TestToNutrientMap(t *testing.T) {
	got := ToNutrientMap([]domain.NutrientPair{
		{Name: "Caloric_Value", Value: "80"},
		{Name: "Sodium", Value: "80mg"},
		{Name: "Sugars", Value: "n/a"},
	})

	assert.Equal(t, domain.LabelResponse{
		"Caloric_Value": 80,
		"Sodium":        80,
		"Sugars":        0,
	}, got)
}
