package main

import (
	"log"

	_ "interiorquote/docs"
	"interiorquote/internal/adapter/http/routes"
	"interiorquote/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Interior Quote API
// @version         1.0
// @description     Design requests, priced quotes and quote documents for an interior design studio.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("[app] starting port=%s store=%s artifacts=%s", cfg.Server.Port, cfg.Store.Driver, cfg.Artifacts.Backend)

	routes.Run(cfg)
}
