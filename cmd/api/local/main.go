//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/wkcda/crm-gateway/apps/api/server"

	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()

	server.InitializeHandlers()
	server.InitializeRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
