package main

import (
	"log"

	"card_payments/internal/adapter/http/routes"
	"card_payments/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Square Payment API
// @version         1.0
// @description     Point-of-sale service: Square payments, customers, cards on file and locations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3001
// @BasePath  /

func main() {
	cfg, err := config.Load("3001")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.RunSquare(cfg)
}
