package main

import (
	_ "quotelock/docs"
	"quotelock/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           QuoteLock API
// @version         1.0
// @description     Contractor quotes that become tamper-evident agreements once accepted.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated contractor id set by the upstream gateway.

func main() {
	routes.Run()
}
