package domain

import "errors"

var (
	MessageFailedUploadLabel  = "failed to read label image"
	MessageFailedExtractLabel = "failed to extract nutrients from label"
	MessageFailedOCR          = "failed to recognise label text"

	ErrInvalidImage    = errors.New("invalid image format")
	ErrImageTooLarge   = errors.New("image exceeds upload limit")
	ErrOCRFailed       = errors.New("ocr processing failed")
	ErrExtractionParse = errors.New("extraction output could not be parsed")

	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	// NutrientPair is one (name, value) entry returned by the extraction model.
	NutrientPair struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	LabelResponse map[string]float64
)
