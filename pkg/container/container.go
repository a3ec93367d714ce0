package container

import (
	"context"
	"fmt"
	"time"

	"cms-backend/internal/config"
	authorHandler "cms-backend/internal/domains/author/handler"
	authorRepo "cms-backend/internal/domains/author/repository"
	authorService "cms-backend/internal/domains/author/service"
	postHandler "cms-backend/internal/domains/post/handler"
	postRepo "cms-backend/internal/domains/post/repository"
	postService "cms-backend/internal/domains/post/service"
	"cms-backend/internal/infrastructure/database"
	"cms-backend/pkg/logger"
)

// Container holds the application's dependency graph.
// Order of construction: config -> database -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo authorRepo.RepositoryInterface
	PostRepo   postRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	PostService   postService.ServiceInterface

	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer loads config, connects to PostgreSQL, optionally migrates the schema
// and wires every domain.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("Initializing DI container", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	c := &Container{Config: cfg}

	db := database.NewPostgresDB(cfg.Database)

	// Connect retries on its own; the pool keeps this context for its lifetime
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := database.RunMigrations(cfg.Database.DSN()); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("DI container ready", map[string]interface{}{
		"migrate_on_start": cfg.Database.MigrateOnStart,
	})
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.DB, c.AuthorRepo)
	c.PostService = postService.NewPostService(c.DB, c.PostRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
}

// Cleanup releases infrastructure resources. Call on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
