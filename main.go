package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/machikasa/machikasa-api/cmd/app"
)

// @contact.name   machikasa project
// @contact.email  dev@machikasa.local
//
// @license.name  MIT
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
