package routes

import (
	"context"
	"fmt"
	"log"
	"time"

	"interiorquote/internal/adapter/http/handlers"
	"interiorquote/internal/adapter/persistence/repository"
	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/infrastructure/ai"
	"interiorquote/internal/infrastructure/database"
	"interiorquote/internal/infrastructure/document"
	"interiorquote/internal/infrastructure/notification"
	"interiorquote/internal/infrastructure/storage"
	"interiorquote/internal/usecase"
	"interiorquote/internal/usecase/interfaces"
)

type application struct {
	quotes      *handlers.QuoteHandler
	projects    *handlers.ProjectHandler
	costConfigs *handlers.CostConfigHandler

	closers []func(ctx context.Context) error
}

type repositories struct {
	quotes      interfaces.IQuoteRepository
	projects    interfaces.IProjectRepository
	costConfigs interfaces.ICostConfigRepository
	close       func(ctx context.Context) error
}

func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{}

	repos, err := newRepositories(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if repos.close != nil {
		app.closers = append(app.closers, repos.close)
	}

	costConfigUseCase := usecase.NewCostConfigUseCase(repos.costConfigs)
	if cfg.Server.SeedCatalog {
		n, err := costConfigUseCase.SeedDefaults(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Printf("[app] catalog seeded inserted=%d", n)
	}

	gateway := ai.NewOpenAIGateway(cfg.AI)
	log.Printf("[app] generation gateway mock=%t", gateway.MockMode())

	artifacts, err := storage.New(ctx, cfg.Artifacts)
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}
	if cfg.Artifacts.Retention > 0 {
		sweeper := storage.NewRetentionSweeper(artifacts, cfg.Artifacts.Retention)
		if err := sweeper.Start(cfg.Artifacts.SweepCron); err != nil {
			return nil, fmt.Errorf("retention sweep: %w", err)
		}
		app.closers = append(app.closers, func(context.Context) error {
			sweeper.Stop()
			return nil
		})
	}
	if gcs, ok := artifacts.(*storage.GCSStore); ok {
		app.closers = append(app.closers, func(context.Context) error { return gcs.Close() })
	}

	quoteUseCase := usecase.NewQuoteUseCase(usecase.QuoteUseCaseDeps{
		Quotes:        repos.quotes,
		Projects:      repos.projects,
		CostConfigs:   repos.costConfigs,
		BOQ:           gateway,
		PDFRenderer:   document.NewPDFRenderer(),
		ExcelRenderer: document.NewExcelExporter(),
		Artifacts:     artifacts,
		Notifier:      notification.New(cfg.SMTP, cfg.Twilio),
		Issuer: entities.Issuer{
			Name:     cfg.Issuer.Name,
			Address:  cfg.Issuer.Address,
			Email:    cfg.Issuer.Email,
			Phone:    cfg.Issuer.Phone,
			Currency: cfg.Issuer.Currency,
		},
		Validity: cfg.Quote.Validity(),
	})
	projectUseCase := usecase.NewProjectUseCase(repos.projects, gateway)

	app.quotes = handlers.NewQuoteHandler(quoteUseCase)
	app.projects = handlers.NewProjectHandler(projectUseCase)
	app.costConfigs = handlers.NewCostConfigHandler(costConfigUseCase)
	return app, nil
}

func newRepositories(ctx context.Context, cfg config.StoreConfig) (repositories, error) {
	switch cfg.Driver {
	case "mongo":
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.CreateTables {
			names := repository.MongoCollections{
				Quotes:      cfg.QuotesTable,
				Projects:    cfg.ProjectsTable,
				CostConfigs: cfg.CostConfigsTable,
			}
			if err := repository.EnsureMongoIndexes(ctx, db, names); err != nil {
				return repositories{}, err
			}
		}
		return repositories{
			quotes:      repository.NewQuoteMongoRepository(db, cfg.QuotesTable),
			projects:    repository.NewProjectMongoRepository(db, cfg.ProjectsTable),
			costConfigs: repository.NewCostConfigMongoRepository(db, cfg.CostConfigsTable),
			close:       client.Disconnect,
		}, nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.CreateTables {
			if err := database.EnsureDynamoTables(ctx, ddb, repository.DynamoTableDefinitions(cfg)); err != nil {
				return repositories{}, err
			}
		}
		return repositories{
			quotes:      repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
			projects:    repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
			costConfigs: repository.NewCostConfigDynamoRepository(ddb, cfg.CostConfigsTable),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Close releases the store connections and stops background jobs.
func (a *application) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Printf("[app] close failed err=%v", err)
		}
	}
}
