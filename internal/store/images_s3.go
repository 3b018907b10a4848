// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the part of the S3 client the image storage uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ImageStorage keeps profile images in an S3-compatible bucket.
type s3ImageStorage struct {
	client     s3API
	bucket     string
	publicPath string
	logger     *logger.Logger
}

// NewS3ImageStorage returns an [ImageStorage] backed by the configured
// bucket. A custom endpoint (MinIO and the like) and static credentials are
// used when given; otherwise the default AWS credential chain applies.
func NewS3ImageStorage(ctx context.Context, cfg appconfig.Images, log *logger.Logger) (ImageStorage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	return newS3ImageStorage(client, cfg.S3.Bucket, cfg.PublicPath, log), nil
}

func newS3ImageStorage(client s3API, bucket, publicPath string, log *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client:     client,
		bucket:     bucket,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		logger:     log,
	}
}

// SaveImage implements [ImageStorage].
func (s *s3ImageStorage) SaveImage(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if !validImageName(name) {
		return "", ErrInvalidImageLocation
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.SaveImage").Str("bucket", s.bucket).Msg("error uploading image")
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// DeleteImage implements [ImageStorage]. S3 deletes are idempotent.
func (s *s3ImageStorage) DeleteImage(ctx context.Context, location string) error {
	name, ok := strings.CutPrefix(location, s.publicPath+"/")
	if !ok || !validImageName(name) {
		return ErrInvalidImageLocation
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}
