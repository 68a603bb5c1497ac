package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Abraxas-365/laboral/assistant"
	"github.com/Abraxas-365/laboral/assistant/assistantapi"
	"github.com/Abraxas-365/laboral/assistant/assistantinfra"
	"github.com/Abraxas-365/laboral/assistant/assistantsrv"
	"github.com/Abraxas-365/laboral/internal/config"
	"github.com/Abraxas-365/laboral/labor/contract/contractapi"
	"github.com/Abraxas-365/laboral/labor/contract/contractinfra"
	"github.com/Abraxas-365/laboral/labor/contract/contractsrv"
	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/labor/holiday/holidayapi"
	"github.com/Abraxas-365/laboral/labor/holiday/holidayinfra"
	"github.com/Abraxas-365/laboral/labor/holiday/holidaysrv"
	"github.com/Abraxas-365/laboral/labor/vacation/vacationapi"
	"github.com/Abraxas-365/laboral/labor/vacation/vacationinfra"
	"github.com/Abraxas-365/laboral/labor/vacation/vacationsrv"
	"github.com/Abraxas-365/laboral/labor/workentry/workentryapi"
	"github.com/Abraxas-365/laboral/labor/workentry/workentryinfra"
	"github.com/Abraxas-365/laboral/labor/workentry/workentrysrv"
	"github.com/Abraxas-365/laboral/pkg/fsx"
	"github.com/Abraxas-365/laboral/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authapi"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authsrv"
	"github.com/Abraxas-365/laboral/pkg/iam/user/userinfra"
	"github.com/Abraxas-365/laboral/pkg/iam/user/usersrv"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem

	// Services
	TokenService     auth.TokenService
	AuthService      *authsrv.AuthService
	UserService      *usersrv.UserService
	HolidayService   *holidaysrv.HolidayService
	VacationService  *vacationsrv.VacationService
	ContractService  *contractsrv.ContractService
	WorkEntryService *workentrysrv.WorkEntryService
	AssistantService *assistantsrv.AssistantService

	// API Handlers
	AuthHandlers      *authapi.Handlers
	HolidayHandlers   *holidayapi.Handlers
	VacationHandlers  *vacationapi.Handlers
	ContractHandlers  *contractapi.Handlers
	WorkEntryHandlers *workentryapi.Handlers
	AssistantHandlers *assistantapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	c.initHandlers()
	return c
}

// Close releases pooled connections
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}

func openDB(cfg config.DBConfig) *sqlx.DB {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db
}

// openRedis returns nil when Redis is not configured or unreachable
func openRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		logx.Info("REDIS_ADDR not set, holiday cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis, holiday cache disabled: %v", err)
		client.Close()
		return nil
	}
	return client
}

// newHolidayService wires remote source, static fallback and the optional cache
func newHolidayService(cfg config.HolidaysConfig, rdb *redis.Client) *holidaysrv.HolidayService {
	var cache holiday.Cache
	if rdb != nil {
		cache = holidayinfra.NewRedisCache(rdb)
	}
	return holidaysrv.NewHolidayService(
		holidayinfra.NewFeriadosClient(cfg.URL, cfg.Timeout),
		holidayinfra.NewStaticSource(),
		cache,
		cfg.CacheTTL,
	)
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	c.DB = openDB(c.Config.DB)

	// 2. Redis Connection
	c.Redis = openRedis(c.Config.Redis)

	// 3. AWS S3 Configuration
	if c.Config.AWS.Enabled() {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(c.Config.AWS.Region))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(awsCfg), c.Config.AWS.Bucket, c.Config.AWS.Prefix)
	} else {
		logx.Warn("AWS_BUCKET is not set, contract files will not be stored")
	}
}

func (c *Container) initServices() {
	// --- IAM ---
	secret, insecure := c.Config.Auth.JWTSecretOrDefault()
	if insecure {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
	}
	c.TokenService = auth.NewJWTService(secret, c.Config.Auth.JWTTTL)
	c.AuthMiddleware = auth.Middleware(c.TokenService)

	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	c.UserService = usersrv.NewUserService(userRepo)
	c.AuthService = authsrv.NewAuthService(
		userRepo,
		authinfra.NewBcryptPasswordService(c.Config.Auth.BcryptCost),
		c.TokenService,
	)

	// --- Labor ---
	c.HolidayService = newHolidayService(c.Config.Holidays, c.Redis)
	c.VacationService = vacationsrv.NewVacationService(
		vacationinfra.NewPostgresVacationRepository(c.DB),
		vacationinfra.NewPostgresSettingsRepository(c.DB),
		c.HolidayService,
		c.Config.Vacations.AllowOverlap,
	)
	c.ContractService = contractsrv.NewContractService(contractinfra.NewPostgresContractRepository(c.DB), c.FileSystem)
	c.WorkEntryService = workentrysrv.NewWorkEntryService(workentryinfra.NewPostgresWorkEntryRepository(c.DB))

	// --- Assistant ---
	var completer assistant.Completer
	if c.Config.OpenAI.APIKey != "" {
		completer = assistantinfra.NewOpenAIClient(c.Config.OpenAI.APIKey, c.Config.OpenAI.Model)
	} else {
		logx.Warn("OPENAI_API_KEY is not set, assistant endpoints will fail")
	}
	c.AssistantService = assistantsrv.NewAssistantService(assistantinfra.NewPostgresChatRepository(c.DB), completer)
}

func (c *Container) initHandlers() {
	c.AuthHandlers = authapi.NewHandlers(c.AuthService, c.UserService)
	c.HolidayHandlers = holidayapi.NewHandlers(c.HolidayService)
	c.VacationHandlers = vacationapi.NewHandlers(c.VacationService)
	c.ContractHandlers = contractapi.NewHandlers(c.ContractService)
	c.WorkEntryHandlers = workentryapi.NewHandlers(c.WorkEntryService)
	c.AssistantHandlers = assistantapi.NewHandlers(c.AssistantService)
}
