package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"interiorquote/internal/config"
	"interiorquote/internal/infrastructure/database"
	"interiorquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// QuotesPrefix is the object-name prefix of every rendered quote.
const QuotesPrefix = "quotes/"

// Store is an artifact store that can also expire old objects.
type Store interface {
	interfaces.IArtifactStore
	DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error)
}

// New builds the artifact store selected by cfg.Backend.
func New(ctx context.Context, cfg config.ArtifactsConfig) (Store, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStore(cfg.Dir, cfg.PublicBaseURL)
	case "s3":
		awsCfg, err := database.NewAWSConfig(ctx, regionOrAuto(cfg.Region), cfg.Endpoint != "")
		if err != nil {
			return nil, fmt.Errorf("s3 config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
				o.UsePathStyle = true
			}
		})
		log.Printf("[storage][s3] client initialized bucket=%s endpoint=%q", cfg.Bucket, cfg.Endpoint)
		return NewS3Store(client, cfg.Bucket, cfg.PublicBaseURL), nil
	case "gcs":
		return NewGCSStore(ctx, cfg.Bucket, cfg.PublicBaseURL, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown artifacts backend %q", cfg.Backend)
	}
}

func regionOrAuto(region string) string {
	if region == "" {
		return "auto"
	}
	return region
}

func joinURL(base, objectName string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(objectName, "/")
}
