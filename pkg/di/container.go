package di

import (
	"context"
	"time"

	"taskhive/application/serviceimpl"
	"taskhive/domain/repositories"
	"taskhive/domain/services"
	"taskhive/infrastructure/postgres"
	redispkg "taskhive/infrastructure/redis"
	"taskhive/interfaces/api/handlers"
	"taskhive/pkg/config"
	"taskhive/pkg/logger"
	"taskhive/pkg/scheduler"

	"gorm.io/gorm"
)

const overdueDigestCron = "0 7 * * *"

type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redispkg.Client // optional; refresh-token revocation disabled when nil
	TokenStore  *redispkg.TokenStore
	Scheduler   scheduler.JobScheduler

	UserRepository     repositories.UserRepository
	TaskRepository     repositories.TaskRepository
	CategoryRepository repositories.CategoryRepository
	TagRepository      repositories.TagRepository

	UserService     services.UserService
	TaskService     services.TaskService
	CategoryService services.CategoryService
	TagService      services.TagService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional: without it refresh tokens stay stateless and cannot
	// be revoked before expiry.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (token revocation disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.TokenStore = redispkg.NewTokenStore(redisClient)
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
}

func (c *Container) initServices() {
	accessTTL := time.Duration(c.Config.JWT.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(c.Config.JWT.RefreshTTLDays) * 24 * time.Hour

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenStore, c.Config.JWT.Secret, accessTTL, refreshTTL)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.CategoryRepository, c.TagRepository)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.TagService = serviceimpl.NewTagService(c.TagRepository)
}

func (c *Container) initScheduler() error {
	c.Scheduler = scheduler.NewJobScheduler()

	err := c.Scheduler.AddJob("overdue-digest", overdueDigestCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, err := c.TaskRepository.CountOverdue(ctx)
		if err != nil {
			logger.Error("Overdue digest failed", "error", err)
			return
		}
		logger.Info("Overdue digest", "overdue_tasks", count)
	})
	if err != nil {
		return err
	}

	c.Scheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.Scheduler != nil && c.Scheduler.IsRunning() {
		c.Scheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		TaskService:     c.TaskService,
		CategoryService: c.CategoryService,
		TagService:      c.TagService,
		Config:          c.Config,
	}
}
