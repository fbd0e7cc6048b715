package pkg

import (
	"context"
	"fmt"

	"visaportal/internal/app/config"
	"visaportal/internal/app/docgen"
	"visaportal/internal/app/dsn"
	"visaportal/internal/app/handler"
	"visaportal/internal/app/middleware"
	"visaportal/internal/app/redis"
	"visaportal/internal/app/repository"
	"visaportal/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "visaportal/docs"
)

type Application struct {
	Config      *config.Config
	Router      *gin.Engine
	Handler     *handler.Handler
	AuthHandler *handler.AuthHandler
	Auth        *middleware.AuthMiddleware
}

// NewApp builds the full dependency graph: config, record store, object
// store, redis, the document generator and the HTTP handlers.
func NewApp(ctx context.Context) (*Application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, fmt.Errorf("database DSN is empty, check .env")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	generator := docgen.New(repo, minioClient)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	return &Application{
		Config:      cfg,
		Router:      router,
		Handler:     handler.NewHandler(repo, minioClient, generator),
		AuthHandler: handler.NewAuthHandler(repo, redisClient, cfg),
		Auth:        middleware.NewAuthMiddleware(redisClient, cfg),
	}, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.RegisterRoutes(a.Router, a.Auth, a.AuthHandler)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
