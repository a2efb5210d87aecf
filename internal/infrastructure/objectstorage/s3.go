package objectstorage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/drezzup/catalog-service/config"
	"github.com/google/uuid"
)

// Uploader persists a file in object storage and returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, contentType string, originalName string) (string, error)
}

type S3Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

func CreateS3Uploader(ctx context.Context, conf appconfig.S3Config) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	return &S3Uploader{
		uploader: manager.NewUploader(client),
		bucket:   conf.Bucket,
	}, nil
}

func (u *S3Uploader) UploadFile(ctx context.Context, body io.Reader, contentType string, originalName string) (string, error) {
	// random keys so concurrent uploads of equally named files never collide
	key := uuid.New().String() + filepath.Ext(originalName)

	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return result.Location, nil
}
