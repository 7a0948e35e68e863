package label

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/internal/utils/metrics"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	LabelService interface {
		ExtractFromImage(ctx context.Context, image []byte) (domain.LabelResponse, error)
	}

	labelService struct {
		detector   TextDetector
		extractor  NutrientExtractor
		ocrTimeout time.Duration
		llmTimeout time.Duration
	}
)

func NewLabelService(detector TextDetector, extractor NutrientExtractor, ocrTimeout, llmTimeout time.Duration) LabelService {
	return &labelService{
		detector:   detector,
		extractor:  extractor,
		ocrTimeout: ocrTimeout,
		llmTimeout: llmTimeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func (s *labelService) ExtractFromImage(ctx context.Context, image []byte) (domain.LabelResponse, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidImage
	}

	ocrCtx, cancel := withTimeout(ctx, s.ocrTimeout)
	text, err := s.detector.DetectText(ocrCtx, image)
	cancel()
	if err != nil {
		metrics.LabelExtractions.WithLabelValues(metrics.ResultOCRError).Inc()
		log.Errorf("label ocr failed: %v", err)
		if errors.Is(err, domain.ErrOCRFailed) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrOCRFailed, err)
	}

	if text == "" {
		metrics.LabelExtractions.WithLabelValues(metrics.ResultSuccess).Inc()
		return domain.LabelResponse{}, nil
	}

	llmCtx, cancel := withTimeout(ctx, s.llmTimeout)
	pairs, err := s.extractor.Extract(llmCtx, text)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrExtractionParse) {
			metrics.LabelExtractions.WithLabelValues(metrics.ResultParseError).Inc()
		} else {
			metrics.LabelExtractions.WithLabelValues(metrics.ResultLLMError).Inc()
		}
		log.Errorf("label extraction failed: %v", err)
		return nil, err
	}

	metrics.LabelExtractions.WithLabelValues(metrics.ResultSuccess).Inc()
	return ToNutrientMap(pairs), nil
}
