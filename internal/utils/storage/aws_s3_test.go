package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockObjectGetter struct {
	objects map[string]string
}

func (m *mockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://models/linear.json", bucket: "models", key: "linear.json"},
		{uri: "s3://models/v2/linear.json", bucket: "models", key: "v2/linear.json"},
		{uri: "s3://models", wantErr: true},
		{uri: "s3:///linear.json", wantErr: true},
		{uri: "model/linear.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidS3URI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestAwsS3_GetObject(t *testing.T) {
	store := newAwsS3WithClient(&mockObjectGetter{objects: map[string]string{
		"models/linear.json": `{"intercept": 1}`,
	}})

	data, err := store.GetObject(context.Background(), "models", "linear.json")
	require.NoError(t, err)
	assert.Equal(t, `{"intercept": 1}`, string(data))

	_, err = store.GetObject(context.Background(), "models", "missing.json")
	assert.Error(t, err)
}
