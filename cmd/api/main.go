package main

import (
	_ "chromaprint/docs"
	"chromaprint/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ChromaPrint API
// @version         1.0
// @description     ChromaPrint 3D print storefront: printer catalog, instant estimates, quotes and quote payments.

// @contact.name   ChromaPrint Support
// @contact.email  support@chromaprint.dev

// @host localhost:8000

// @BasePath  /

// @securityDefinitions.apikey DemoToken
// @in header
// @name X-Demo-Token
// @description Token returned by POST /api/auth/login.

func main() {
	routes.Run()
}
