package services

import (
	"context"
	"fmt"

	"github.com/nexconsult/cnpj-toolkit/internal/cnpj"
	"github.com/nexconsult/cnpj-toolkit/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	Registry    *prometheus.Registry
	Metrics     *Metrics
	CNPJService CNPJServiceInterface
	RateStore   *RateStore
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	return NewContainerWithSource(cfg, logger, nil)
}

// NewContainerWithSource creates a container whose generator draws from src
func NewContainerWithSource(cfg *config.Config, logger *logrus.Logger, src cnpj.Source) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()
	container.initMetrics()

	if err := container.initServices(src); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initRedis initializes the Redis client; an unreachable server leaves the client nil
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, rate limits are kept in memory")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.WithFields(logrus.Fields{
			"addr":  c.config.Redis.Addr(),
			"error": err.Error(),
		}).Warn("Redis connection failed, rate limits are kept in memory")
		_ = client.Close()
		return
	}

	c.logger.WithField("addr", c.config.Redis.Addr()).Info("Redis connection established")
	c.redisClient = client
}

func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = NewMetrics(c.Registry)
}

// initServices initializes all services
func (c *Container) initServices(src cnpj.Source) error {
	c.RateStore = NewRateStore(c.redisClient, c.logger)

	cnpjService, err := NewCNPJService(c.config.CNPJ, src, c.Metrics, c.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize CNPJ service: %w", err)
	}
	c.CNPJService = cnpjService

	return nil
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.RateStore != nil {
		health["rate_store"] = c.RateStore.Health()
	}

	if c.CNPJService != nil {
		health["cnpj"] = c.CNPJService.Health()
	}

	return health
}
