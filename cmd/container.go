package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ajcportal/careerhub/internal/matchsvc"
	"github.com/ajcportal/careerhub/pkg/fsx"
	"github.com/ajcportal/careerhub/pkg/fsx/fsxs3"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/job/jobapi"
	"github.com/ajcportal/careerhub/recruitment/job/jobinfra"
	"github.com/ajcportal/careerhub/recruitment/job/jobsrv"
	"github.com/ajcportal/careerhub/recruitment/matching/matchingapi"
	"github.com/ajcportal/careerhub/recruitment/matching/matchinginfra"
	"github.com/ajcportal/careerhub/recruitment/matching/matchingsrv"
	"github.com/ajcportal/careerhub/recruitment/matching/worker"
	"github.com/ajcportal/careerhub/recruitment/notification/notifyapi"
	"github.com/ajcportal/careerhub/recruitment/notification/notifyinfra"
	"github.com/ajcportal/careerhub/recruitment/notification/notifysrv"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterapi"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterauth"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterinfra"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruitersrv"
	"github.com/ajcportal/careerhub/recruitment/student/studentapi"
	"github.com/ajcportal/careerhub/recruitment/student/studentinfra"
	"github.com/ajcportal/careerhub/recruitment/student/studentsrv"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	TokenService        recruiter.TokenService
	RecruiterService    *recruitersrv.RecruiterService
	StudentService      *studentsrv.StudentService
	JobService          *jobsrv.JobService
	NotificationService *notifysrv.NotificationService
	MatchingService     *matchingsrv.MatchingService

	// Workers
	RunWorker *worker.RunWorker

	// API Handlers
	RecruiterHandlers    *recruiterapi.Handlers
	StudentHandlers      *studentapi.Handlers
	JobHandlers          *jobapi.Handlers
	NotificationHandlers *notifyapi.Handlers
	MatchingHandlers     *matchingapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 for uploaded resume archives
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
}

func (c *Container) initServices() {
	// --- Repositories ---
	recruiterRepo := recruiterinfra.NewPostgresRecruiterRepository(c.DB)
	studentRepo := studentinfra.NewPostgresStudentRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	runRepo := matchinginfra.NewPostgresRunRepository(c.DB)

	// --- Auth ---
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = recruiterauth.NewJWTTokenService(jwtSecret, 24*time.Hour, "careerhub")
	passwordSvc := recruiterauth.NewBcryptPasswordService()

	// --- Mail Transport ---
	mailer := notifyinfra.NewSMTPMailer(notifyinfra.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     envInt("SMTP_PORT", 587),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
		UseTLS:   os.Getenv("SMTP_TLS") == "true",
	})

	// --- External Matching Service ---
	matchURL := os.Getenv("MATCH_SERVICE_URL")
	if matchURL == "" {
		matchURL = "http://localhost:8001"
	}
	parserClient := matchinginfra.NewServiceClient(
		matchsvc.NewClient(matchURL, 30*time.Second),
	)

	// --- Queue ---
	runQueue := matchinginfra.NewRedisQueue(c.Redis, "match_run_tasks")

	// --- Domain Services ---
	c.RecruiterService = recruitersrv.NewRecruiterService(recruiterRepo, passwordSvc, c.TokenService)
	c.StudentService = studentsrv.NewStudentService(studentRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, recruiterRepo, studentRepo)
	c.NotificationService = notifysrv.NewNotificationService(mailer)
	c.MatchingService = matchingsrv.NewMatchingService(
		runRepo,
		runQueue,
		jobRepo,
		recruiterRepo,
		parserClient,
		c.FileSystem,
		c.JobService,
		c.NotificationService,
		matchingsrv.Config{},
	)

	// --- Workers ---
	c.RunWorker = worker.NewRunWorker(c.MatchingService, runQueue, envInt("RUN_WORKERS", 2))

	// --- Handlers ---
	c.RecruiterHandlers = recruiterapi.NewHandlers(c.RecruiterService)
	c.StudentHandlers = studentapi.NewHandlers(c.StudentService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.NotificationHandlers = notifyapi.NewHandlers(c.NotificationService)
	c.MatchingHandlers = matchingapi.NewHandlers(c.MatchingService)

	// --- Middleware ---
	c.AuthMiddleware = recruiterauth.Middleware(c.TokenService)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logx.Warnf("Invalid %s value %q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}
