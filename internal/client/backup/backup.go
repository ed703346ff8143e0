// Package backup uploads dashboard snapshots to S3-compatible object storage
// through presigned PUT URLs.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/netx"
)

const (
	contentType   = "application/json"
	presignExpiry = 15 * time.Minute
)

// ErrNotConfigured is returned when no bucket or endpoint is set.
var ErrNotConfigured = errors.New("backup storage is not configured")

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Uploader writes snapshots as JSON objects.
type Uploader struct {
	cfg *config.Config
	hc  *http.Client
	now func() time.Time
}

func NewUploader(cfg *config.Config, hc *http.Client) (*Uploader, error) {
	if !cfg.BackupEnabled() {
		return nil, ErrNotConfigured
	}
	return &Uploader{cfg: cfg, hc: hc, now: time.Now}, nil
}

// ObjectKey lays snapshots out by day: portfolio/backups/YYYY/MM/DD/<uuid>.json.
func ObjectKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("portfolio/backups/%04d/%02d/%02d/%s.json", t.Year(), int(t.Month()), t.Day(), uuid.New())
}

func (u *Uploader) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(u.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.S3AccessKey,
			u.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	return newS3PresignClient(client), nil
}

// Upload stores snap under a fresh key and returns that key.
func (u *Uploader) Upload(ctx context.Context, snap *models.Snapshot) (string, error) {
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	pc, err := u.presignClient(ctx)
	if err != nil {
		return "", err
	}

	key := ObjectKey(u.now())
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, u.hc, req.URL, contentType, body); err != nil {
		return "", err
	}
	return key, nil
}
