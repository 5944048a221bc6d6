package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"interiorquote/internal/domain/entities"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStore keeps artifacts in a Cloud Storage bucket.
type GCSStore struct {
	client     *storage.Client
	bucket     string
	publicBase string
}

var _ Store = (*GCSStore)(nil)

// NewGCSStore uses the service account file when given, otherwise
// application default credentials.
func NewGCSStore(ctx context.Context, bucket, publicBase, credentialsFile string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	if publicBase == "" {
		publicBase = "https://storage.googleapis.com/" + bucket
	}
	log.Printf("[storage][gcs] client initialized bucket=%s", bucket)
	return &GCSStore{client: client, bucket: bucket, publicBase: publicBase}, nil
}

// Save refuses to overwrite an existing object.
func (s *GCSStore) Save(ctx context.Context, objectName string, content []byte, contentType string) (entities.Artifact, error) {
	o := s.client.Bucket(s.bucket).Object(objectName).If(storage.Conditions{DoesNotExist: true})

	wc := o.NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(content); err != nil {
		_ = wc.Close()
		return entities.Artifact{}, fmt.Errorf("write %s: %w", objectName, err)
	}
	if err := wc.Close(); err != nil {
		return entities.Artifact{}, fmt.Errorf("close %s: %w", objectName, err)
	}

	return entities.Artifact{
		URL:        joinURL(s.publicBase, objectName),
		ObjectName: objectName,
		MimeType:   contentType,
		SizeBytes:  int64(len(content)),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *GCSStore) DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error) {
	bkt := s.client.Bucket(s.bucket)
	it := bkt.Objects(ctx, &storage.Query{Prefix: prefix})

	deleted := 0
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return deleted, err
		}
		if !attrs.Created.Before(cutoff) {
			continue
		}
		if err := bkt.Object(attrs.Name).Delete(ctx); err != nil {
			return deleted, fmt.Errorf("delete %s: %w", attrs.Name, err)
		}
		deleted++
	}
	return deleted, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
