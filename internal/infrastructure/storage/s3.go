package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"interiorquote/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the part of *s3.Client the store uses.
type s3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps artifacts in an S3-compatible bucket (AWS S3, Cloudflare R2,
// MinIO). publicBase is the public domain objects are served from.
type S3Store struct {
	client     s3API
	bucket     string
	publicBase string
}

var _ Store = (*S3Store)(nil)

func NewS3Store(client s3API, bucket, publicBase string) *S3Store {
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3Store{client: client, bucket: bucket, publicBase: publicBase}
}

func (s *S3Store) Save(ctx context.Context, objectName string, content []byte, contentType string) (entities.Artifact, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return entities.Artifact{}, fmt.Errorf("upload %s: %w", objectName, err)
	}
	return entities.Artifact{
		URL:        joinURL(s.publicBase, objectName),
		ObjectName: objectName,
		MimeType:   contentType,
		SizeBytes:  int64(len(content)),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *S3Store) DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	deleted := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return deleted, err
		}
		for _, obj := range page.Contents {
			if obj.LastModified == nil || !obj.LastModified.Before(cutoff) {
				continue
			}
			if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			}); err != nil {
				return deleted, fmt.Errorf("delete %s: %w", aws.ToString(obj.Key), err)
			}
			deleted++
		}
	}
	return deleted, nil
}
