package main

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/cvlens/cvlens/internal/ai/gemini"
	"github.com/cvlens/cvlens/internal/ai/openai"
	"github.com/cvlens/cvlens/internal/config"
	"github.com/cvlens/cvlens/internal/extract"
	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/parsing/resume/resumeapi"
	"github.com/cvlens/cvlens/parsing/resume/resumeinfra"
	"github.com/cvlens/cvlens/parsing/resume/resumesrv"
	"github.com/cvlens/cvlens/pkg/logx"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config

	// Infrastructure
	Redis *redis.Client // nil unless the redis cache backend is selected

	// Services
	Service  *resumesrv.Service
	Handlers *resumeapi.Handlers
}

// NewContainer initializes the dependency injection container.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractor := extract.New(cfg.MaxFileSize)

	c.Service = resumesrv.NewService(generator, cache, extractor, resumesrv.Options{
		MaxRetries:     cfg.MaxRetries,
		RequestTimeout: cfg.RequestTimeout,
	})
	c.Handlers = resumeapi.NewHandlers(c.Service, extractor, cfg.MaxFileSize)
	return c, nil
}

// Close releases infrastructure connections.
func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (resume.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.New(cfg.OpenAIAPIKey, cfg.ModelName, cfg.Temperature, cfg.MaxOutputTokens)
	default:
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.ModelName, cfg.Temperature, cfg.MaxOutputTokens)
	}
}

func (c *Container) newCache(ctx context.Context, cfg *config.Config) (resume.Cache, error) {
	if !cfg.UseCache {
		return nil, nil
	}

	if cfg.CacheBackend == config.CacheBackendRedis {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			logx.Warnf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		return resumeinfra.NewRedisCache(c.Redis, 0), nil
	}

	return resumeinfra.NewFileCache(cfg.CacheDir)
}
