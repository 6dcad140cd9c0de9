package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store hands out presigned PUT URLs for profile photos and company logos
// and builds the public URL for a stored key. The client uploads directly to
// the bucket; the API never proxies file bytes.
type S3Store struct {
	presigner *s3.PresignClient
	bucket    string
	region    string
	expires   time.Duration
}

func NewS3Store(ctx context.Context) (*S3Store, error) {
	region := strings.TrimSpace(os.Getenv("AWS_REGION"))
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET_NAME"))
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	return &S3Store{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		region:    region,
		expires:   5 * time.Minute,
	}, nil
}

// PresignUpload returns an upload URL and the key the object will live at.
func (s *S3Store) PresignUpload(ctx context.Context, fileName, contentType string) (uploadURL, key string, err error) {
	key = path.Join("photos", uuid.NewString()+"-"+path.Base(fileName))

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.expires))
	if err != nil {
		return "", "", err
	}
	return req.URL, key, nil
}

func (s *S3Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
