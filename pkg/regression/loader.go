package regression

import (
	"Nutrition-Density-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

type Source struct {
	Path    string
	URL     string
	Timeout time.Duration
}

// Load resolves the configured model. A URL selects a remote model server;
// otherwise Path is read from disk, or from S3 for s3://bucket/key paths.
func Load(ctx context.Context, src Source, features []string, store storage.AwsS3) (Model, string, error) {
	if src.URL != "" {
		return NewRemoteModel(src.URL, src.Timeout), src.URL, nil
	}
	if src.Path == "" {
		return nil, "", errors.New("no model path or url configured")
	}

	var (
		data []byte
		err  error
	)
	if storage.IsS3URI(src.Path) {
		if store == nil {
			return nil, "", fmt.Errorf("s3 model path %s requires AWS configuration", src.Path)
		}
		bucket, key, perr := storage.ParseS3URI(src.Path)
		if perr != nil {
			return nil, "", perr
		}
		data, err = store.GetObject(ctx, bucket, key)
	} else {
		data, err = os.ReadFile(src.Path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read model artifact: %w", err)
	}

	model, err := ParseLinearModel(data, features)
	if err != nil {
		return nil, "", err
	}
	return model, src.Path, nil
}
