//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/wkcda/crm-gateway/apps/api/server"
	"github.com/wkcda/crm-gateway/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           WKCDA CRM Gateway
// @version         1.0
// @description     Integration gateway between the membership portal and the CRM

// @host      localhost:8000
// @BasePath  /services/apexrest/WKCDA

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var ginLambda *ginadapter.GinLambda

func init() {
	r := gin.Default()

	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request", zap.String("path", req.Path))
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
