package routes

import (
	"context"
	"log"
	"strings"
	"time"

	_ "interiorquote/docs" // generated by swag init
	"interiorquote/internal/config"
	"interiorquote/internal/infrastructure/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the application for cfg and starts the HTTP server.
func Run(cfg config.Config) {
	setMiddlewares(cfg.Server.AllowedOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := newApplication(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer app.Close()

	getRoutes(app)

	if cfg.Artifacts.Backend == "local" {
		base := cfg.Artifacts.PublicBaseURL
		if base == "" {
			base = storage.DefaultLocalPublicBase
		}
		if strings.HasPrefix(base, "/") {
			router.Static(base, cfg.Artifacts.Dir)
		}
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(app *application) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, app.projects, app.quotes)
	addQuoteRoutes(v1, app.quotes)
	addCostConfigRoutes(v1, app.costConfigs)
}

func setMiddlewares(allowedOrigins []string) {
	router.Use(corsMiddleware(allowedOrigins))
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}
	log.Printf("[http][cors] allowed origins=%v", origins)

	return cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return allowed[origin] },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
