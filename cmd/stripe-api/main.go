package main

import (
	"log"

	"card_payments/internal/adapter/http/routes"
	"card_payments/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Stripe Payment API
// @version         1.0
// @description     Charge service: Stripe payment intents, webhook and Mercado Pago payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg, err := config.Load("3000")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.RunStripe(cfg)
}
