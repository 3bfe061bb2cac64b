package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores images in an S3 bucket under an uploads/ prefix and
// returns virtual-hosted URLs.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	cfgOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey != "" || secret != "" {
		cfgOpts = append(cfgOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := validate(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := "uploads/" + objectName(file)
	contentType := file.Header.Get("Content-Type")

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", fmt.Errorf("s3 PutObject failed: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
