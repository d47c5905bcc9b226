package main

import (
	_ "engagetrack/docs"
	"engagetrack/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EngageTrack API
// @version         1.0
// @description     Customer engagement tracking service (customers, engagements, contract documents and dashboard aggregates) backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
