package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/datafield/asset-library-backend/config"
	"github.com/datafield/asset-library-backend/docs"
	collectionHandler "github.com/datafield/asset-library-backend/internal/handler/collection"
	environmentHandler "github.com/datafield/asset-library-backend/internal/handler/environment"
	userHandler "github.com/datafield/asset-library-backend/internal/handler/user"
	"github.com/datafield/asset-library-backend/internal/repository"
	collectionService "github.com/datafield/asset-library-backend/internal/service/collection"
	redisService "github.com/datafield/asset-library-backend/internal/service/redis"
	"github.com/datafield/asset-library-backend/internal/service/session"
	"github.com/datafield/asset-library-backend/internal/service/user"
	"github.com/datafield/asset-library-backend/middleware"
)

type RouterHandler struct {
	userHandler        *userHandler.UserHandler
	collectionHandler  *collectionHandler.CollectionHandler
	environmentHandler *environmentHandler.EnvironmentHandler
	userService        *user.UserService
}

func RunServer(config *config.Config) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)

	userSrv := user.NewUserService(userRepo)
	collectionSrv := collectionService.NewCollectionService(collectionRepo, userRepo)

	var cache redisService.ServiceInterface
	if redisSrv := redisService.NewRedisService(redisService.RedisConfig(config.Redis)); redisSrv != nil {
		cache = redisSrv
		defer redisSrv.Close()
	}
	sessionSrv := session.NewSessionService(userSrv, cache)

	routerHandler := &RouterHandler{
		userHandler:        userHandler.NewUserHandler(userSrv),
		collectionHandler:  collectionHandler.NewCollectionHandler(collectionSrv),
		environmentHandler: environmentHandler.NewEnvironmentHandler(sessionSrv),
		userService:        userSrv,
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else if origin == "https://library.datafield.dev" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-API-Token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "asset-library-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Asset library API"
	docs.SwaggerInfo.Description = "Asset library API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/users/auth", routerHandler.userHandler.CreateOrAuthUserWithPassword)
		publicRoutes.GET("/environment", routerHandler.environmentHandler.GetEnvironment)
	}

	privateRoutes := r.Group("/api/v1")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.GET("/users/profile", routerHandler.userHandler.GetUserById)
		privateRoutes.POST("/users/token", routerHandler.userHandler.RegenerateAPIToken)

		privateRoutes.POST("/collections", routerHandler.collectionHandler.CreateCollection)
		privateRoutes.GET("/collections", routerHandler.collectionHandler.GetCollections)
		privateRoutes.GET("/collections/:uid", routerHandler.collectionHandler.GetCollection)
		privateRoutes.PATCH("/collections/:uid", routerHandler.collectionHandler.UpdateCollection)
		privateRoutes.DELETE("/collections/:uid", routerHandler.collectionHandler.DeleteCollection)
		privateRoutes.GET("/tags", routerHandler.collectionHandler.GetTags)
	}

	tokenRoutes := r.Group("/api/v2")
	tokenRoutes.Use(middleware.APITokenMiddleware(routerHandler.userService))
	{
		tokenRoutes.POST("/collections", routerHandler.collectionHandler.CreateCollection)
		tokenRoutes.GET("/collections", routerHandler.collectionHandler.GetCollections)
		tokenRoutes.GET("/collections/:uid", routerHandler.collectionHandler.GetCollection)
	}

	return r
}
