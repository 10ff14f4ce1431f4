// internal/app/system/storage/s3.go

// Package storage uploads image assets (company logos, investor
// portraits) to S3 and returns the public object URL that gets stored
// on the record.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImageSize caps uploads at 5MB.
const MaxImageSize = 5 * 1024 * 1024

// Folder prefixes inside the bucket.
const (
	FolderCompanies = "companies"
	FolderInvestors = "investors"
	FolderPeople    = "people"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidImageType reports whether the content type is an accepted
// image format.
func ValidImageType(contentType string) bool {
	_, ok := allowedImageTypes[strings.ToLower(contentType)]
	return ok
}

// S3Config holds the uploader configuration.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// Uploader streams images to S3.
type Uploader struct {
	uploader *manager.Uploader
	client   *s3.Client
	cfg      S3Config
	log      *zap.Logger
}

// NewUploader builds an S3-backed uploader. Static credentials from
// config win; otherwise the default AWS credential chain applies.
func NewUploader(ctx context.Context, cfg S3Config, log *zap.Logger) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	} else {
		log.Warn("s3 uploader using default credential chain")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		uploader: manager.NewUploader(client),
		client:   client,
		cfg:      cfg,
		log:      log,
	}, nil
}

// objectKey builds folder/{uuid}{ext} so uploads never collide.
func objectKey(folder, contentType string) string {
	ext := allowedImageTypes[strings.ToLower(contentType)]
	return path.Join(folder, uuid.NewString()+ext)
}

// UploadImage streams the image to S3 and returns its public URL.
func (u *Uploader) UploadImage(ctx context.Context, folder, contentType string, body io.Reader) (string, error) {
	if !ValidImageType(contentType) {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	key := objectKey(folder, contentType)
	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	u.log.Info("uploaded image", zap.String("key", key))
	return u.PublicURL(key), nil
}

// PublicURL returns the unsigned object URL.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

// Delete removes an object by key.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
