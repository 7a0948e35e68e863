package label

import (
	"Nutrition-Density-Backend/domain"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type (
	// TextDetector turns an image into the text printed on it.
	TextDetector interface {
		DetectText(ctx context.Context, image []byte) (string, error)
	}

	rekognitionAPI interface {
		DetectText(ctx context.Context, params *rekognition.DetectTextInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectTextOutput, error)
	}

	rekognitionDetector struct {
		client rekognitionAPI
	}
)

func NewRekognitionDetector(cfg aws.Config) TextDetector {
	return &rekognitionDetector{client: rekognition.NewFromConfig(cfg)}
}

// DetectText joins the detected LINE fragments with single spaces, in the
// order Rekognition reports them.
func (d *rekognitionDetector) DetectText(ctx context.Context, image []byte) (string, error) {
	out, err := d.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: image},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCRFailed, err)
	}

	lines := make([]string, 0, len(out.TextDetections))
	for _, det := range out.TextDetections {
		if det.Type != types.TextTypesLine {
			continue
		}
		if text := strings.TrimSpace(aws.ToString(det.DetectedText)); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, " "), nil
}
