package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// storageService keeps asset photos, documents and purge archives in an
// S3 compatible bucket. A nil receiver means storage is not configured,
// every method degrades to ErrStorageDisabled.
type storageService struct {
	baseService
	client *s3.Client
	bucket string
}

func newStorageService() (*storageService, error) {
	sc := global.Config.S3
	if sc.AccessKey == "" || sc.SecretKey == "" {
		return nil, errs.ErrStorageDisabled
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(sc.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			sc.AccessKey, sc.SecretKey, "")))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
		}
		o.UsePathStyle = sc.Endpoint != ""
	})
	return &storageService{client: client, bucket: sc.Bucket}, nil
}

// StorageKey scatters uploads by date so one prefix never grows unbounded.
func StorageKey(category, filename string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%s-%s", category, d.Year(), d.Month(), utils.UUID(), filename)
}

func (s *storageService) Put(ctx context.Context, key, contentType string, data []byte) error {
	if s == nil {
		return errs.ErrStorageDisabled
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	return err
}

// PresignGet returns a short lived download url for a stored object.
func (s *storageService) PresignGet(ctx context.Context, key string) (string, error) {
	if s == nil {
		return "", errs.ErrStorageDisabled
	}
	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *storageService) Delete(ctx context.Context, key string) error {
	if s == nil {
		return errs.ErrStorageDisabled
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

// Enabled reports whether uploads can be served at all.
func (s *storageService) Enabled() bool {
	return s != nil
}
