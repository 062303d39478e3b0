package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"book-manager-api/internal/config"
	"book-manager-api/internal/infrastructure/database"

	authorhandler "book-manager-api/internal/domains/author/handler"
	authorrepo "book-manager-api/internal/domains/author/repository"
	authorservice "book-manager-api/internal/domains/author/service"
	bookhandler "book-manager-api/internal/domains/book/handler"
	bookrepo "book-manager-api/internal/domains/book/repository"
	bookservice "book-manager-api/internal/domains/book/service"
)

// Container is the root of the dependency graph. Every service receives its
// dependencies as explicit constructor arguments; there is no ambient
// registry.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo authorrepo.RepositoryInterface
	BookRepo   bookrepo.RepositoryInterface

	AuthorValidation authorservice.ValidationInterface
	AuthorCommand    authorservice.CommandInterface
	AuthorQuery      authorservice.QueryInterface
	BookValidation   bookservice.ValidationInterface
	BookCommand      bookservice.CommandInterface
	BookQuery        bookservice.QueryInterface

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

// NewContainer initializes the whole dependency graph in order: config,
// database, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Repositories
	c.AuthorRepo = authorrepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookrepo.NewPostgresRepository(db.Pool)

	// Services. The two domains consume each other only through the narrow
	// checker/query interfaces, wired here.
	c.BookValidation = bookservice.NewValidationService(c.BookRepo)
	c.BookQuery = bookservice.NewQueryService(c.BookRepo)
	c.AuthorValidation = authorservice.NewValidationService(c.AuthorRepo, c.BookQuery)
	c.AuthorQuery = authorservice.NewQueryService(c.AuthorRepo)
	c.AuthorCommand = authorservice.NewCommandService(c.AuthorRepo, c.AuthorValidation, c.BookValidation)
	c.BookCommand = bookservice.NewCommandService(c.BookRepo, c.BookValidation, c.AuthorValidation)

	// Handlers
	c.AuthorHandler = authorhandler.NewAuthorHandler(c.AuthorCommand, c.AuthorQuery)
	c.BookHandler = bookhandler.NewBookHandler(c.BookCommand, c.BookQuery, c.AuthorQuery)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")

	return c, nil
}

// Cleanup releases the container's resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
