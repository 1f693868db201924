package server

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/wkcda/crm-gateway/apps/api/handlers"
	awsclient "github.com/wkcda/crm-gateway/libs/go/client/aws"
	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/helpers"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/middleware"
	"github.com/wkcda/crm-gateway/libs/go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler definitions
var (
	customerHandler   *handlers.CustomerHandler
	activationHandler *handlers.ActivationHandler
	membershipHandler *handlers.MembershipHandler
	donationHandler   *handlers.DonationHandler
	eventHandler      *handlers.EventHandler
	healthHandler     *handlers.HealthHandler

	// Clients
	authClient *middleware.AuthClient

	// Services
	commonServices *handlers.CommonServices

	rateLimiter *middleware.RateLimiter

	stage string
)

// InitializeHandlers wires configuration, the CRM client and the
// service stack. Called once at startup, before InitializeRoutes.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage = os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	crmConfig := dataverse.Config{
		OrgURL:   os.Getenv("CRM_ORG_URL"),
		TenantID: os.Getenv("CRM_TENANT_ID"),
		ClientID: os.Getenv("CRM_CLIENT_ID"),
	}
	if crmConfig.OrgURL == "" || crmConfig.TenantID == "" || crmConfig.ClientID == "" {
		logger.Fatal("Missing required CRM environment variables (CRM_ORG_URL, CRM_TENANT_ID, CRM_CLIENT_ID)")
	}

	resendAPIKey := ""

	if stage == helpers.StageProd || stage == helpers.StageDev {
		// Deployed stages pull secrets from Secrets Manager.
		secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
		}

		crmConfig.ClientSecret, err = secretsClient.GetSecretString(ctx, "CRM_CLIENT_SECRET_ARN", "CRM_CLIENT_SECRET")
		if err != nil || crmConfig.ClientSecret == "" {
			logger.Fatal("Failed to get CRM client secret", zap.Error(err))
		}

		resendAPIKey, err = secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		if err != nil || resendAPIKey == "" {
			logger.Warn("Failed to get Resend API Key. Donation receipts will be disabled.", zap.Error(err))
			resendAPIKey = ""
		}
	} else {
		crmConfig.ClientSecret = os.Getenv("CRM_CLIENT_SECRET")
		if crmConfig.ClientSecret == "" {
			logger.Fatal("CRM_CLIENT_SECRET is required for local development")
		}
		resendAPIKey = os.Getenv("RESEND_API_KEY")
	}

	crmClient := dataverse.NewClient(crmConfig)

	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "donations@wkcda.hk"
	}
	receiptService := services.NewReceiptService(resendAPIKey, fromEmail)

	commonServices = handlers.NewCommonServicesFromCRM(crmClient, receiptService)

	customerHandler = handlers.NewCustomerHandler(commonServices, commonServices.CustomerService)
	activationHandler = handlers.NewActivationHandler(commonServices, commonServices.ActivationService)
	membershipHandler = handlers.NewMembershipHandler(commonServices, commonServices.MembershipService)
	donationHandler = handlers.NewDonationHandler(commonServices, commonServices.DonationService)
	eventHandler = handlers.NewEventHandler(commonServices, commonServices.EventService)
	healthHandler = handlers.NewHealthHandler(commonServices, stage)

	authClient = middleware.NewAuthClient()
	rateLimiter = middleware.NewRateLimiter(100, 200)
}

// InitializeRoutes mounts middleware and the portal-facing endpoints.
// The route prefix matches what the portal already calls, so no portal
// change is needed to point it at this gateway.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(rateLimiter.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.GetHealth)

	ws := router.Group("/services/apexrest/WKCDA")
	ws.Use(authClient.EnsureValidAPIKeyOrToken())
	{
		ws.POST("/CreateCustomerWS", customerHandler.CreateCustomers)
		ws.POST("/UpdateCustomerWS", customerHandler.UpdateCustomers)

		ws.POST("/ActivationCodeValidation", activationHandler.ValidateCode)
		ws.POST("/MembershipActivationWS", activationHandler.Activate)

		ws.POST("/PaidMembershipPurchaseBeforePayment", membershipHandler.PurchaseBeforePayment)
		ws.POST("/PaidMembershipPurchaseAfterPayment", membershipHandler.PurchaseAfterPayment)
		ws.POST("/MembershipUpgradeWS", membershipHandler.Upgrade)
		ws.POST("/MembershipTerminationWS", membershipHandler.Terminate)
		ws.POST("/MembershipStatusEnquiryWS", membershipHandler.Status)

		ws.POST("/CreateOnlineDonationTransactionWS", donationHandler.CreateDonations)

		ws.POST("/CreateEventTransactionWS", eventHandler.CreateEventTransactions)
		ws.POST("/UpdateCustomerEventAttendanceWS", eventHandler.UpdateAttendance)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Correlation-ID",
	}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		"X-Correlation-ID",
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
