// Package bootstrap builds the object graph shared by the server and the CLI.
package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmednasr/product-compare/internal/catalog"
	"github.com/ahmednasr/product-compare/internal/config"
	"github.com/ahmednasr/product-compare/internal/conversation"
	"github.com/ahmednasr/product-compare/internal/database"
	"github.com/ahmednasr/product-compare/internal/repository"
	"github.com/ahmednasr/product-compare/internal/service"
)

// App is the wired assistant.
type App struct {
	Config config.Config
	Store  *conversation.Store
	Chat   service.ChatService
	// Mongo is nil unless the catalog lives in MongoDB.
	Mongo *mongo.Client

	closers []func() error
}

// New wires catalog, backend and chat service according to cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	repo, err := app.productRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	products, err := service.LoadCatalog(ctx, repo)
	if err != nil {
		app.Close()
		return nil, err
	}

	llm, err := app.llm(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Store = conversation.NewStore(products)
	inference := service.NewInference(llm, app.Store, cfg.InferenceTimeout)
	app.Chat = service.NewChatService(app.Store, inference)

	log.Info().
		Str("provider", cfg.LLMProvider).
		Str("catalog_source", cfg.CatalogSource).
		Int("products", len(products)).
		Msg("assistant ready")
	return app, nil
}

// Close releases backend clients and database connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}

func (a *App) productRepository(ctx context.Context) (service.ProductRepository, error) {
	switch a.Config.CatalogSource {
	case config.CatalogYAML:
		return repository.NewYAMLProducts(a.Config.CatalogFile), nil
	case config.CatalogMongo:
		client, err := database.NewMongo(ctx, a.Config.MongoURI)
		if err != nil {
			return nil, err
		}
		a.Mongo = client
		a.closers = append(a.closers, func() error { return client.Disconnect(context.Background()) })
		log.Info().Str("db", a.Config.DBName).Str("collection", a.Config.ProductCollection).Msg("connected to MongoDB")

		repo := repository.NewProductRepository(client.Database(a.Config.DBName), a.Config.ProductCollection)
		if _, err := repo.SeedIfEmpty(ctx, catalog.Sample()); err != nil {
			return nil, err
		}
		return repo, nil
	case config.CatalogStatic:
		return repository.NewStaticProducts(), nil
	default:
		return nil, errors.Errorf("unknown catalog source %q", a.Config.CatalogSource)
	}
}

func (a *App) llm(ctx context.Context) (service.LLM, error) {
	switch a.Config.LLMProvider {
	case config.ProviderHuggingFace:
		return service.NewHuggingFaceLLM(a.Config.HFModelURL, a.Config.HFAPIKey, a.Config.InferenceTimeout), nil
	case config.ProviderVertex:
		llm, err := service.NewVertexLLM(ctx, a.Config.ProjectID, a.Config.Location, a.Config.VertexModel)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, llm.Close)
		return llm, nil
	case config.ProviderEcho:
		return service.NewEchoLLM(), nil
	default:
		return nil, errors.Errorf("unknown LLM provider %q", a.Config.LLMProvider)
	}
}
