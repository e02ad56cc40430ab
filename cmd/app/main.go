package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pindrop/cmd"
	httpadapter "pindrop/internal/adapters/in/http"
	"pindrop/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := openDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateRemindStaleOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.ServerDeps{
		AddToCart:            app.CreateAddToCartCommandHandler(),
		RemoveCartLine:       app.CreateRemoveCartLineCommandHandler(),
		ClearCart:            app.CreateClearCartCommandHandler(),
		Checkout:             app.CreateCheckoutCommandHandler(),
		Reorder:              app.CreateReorderCommandHandler(),
		TransitionOrder:      app.CreateTransitionOrderCommandHandler(),
		ToggleAvailability:   app.CreateTogglePartnerAvailabilityCommandHandler(),
		CreateOffer:          app.CreateCreateOfferCommandHandler(),
		RaiseComplaint:       app.CreateRaiseComplaintCommandHandler(),
		UpdateComplaint:      app.CreateUpdateComplaintCommandHandler(),
		MarkNotificationRead: app.CreateMarkNotificationReadCommandHandler(),

		GetCart:             app.CreateGetCartQueryHandler(),
		GetCustomerOrders:   app.CreateGetCustomerOrdersQueryHandler(),
		GetRestaurantOrders: app.CreateGetRestaurantOrdersQueryHandler(),
		GetAssignedOrders:   app.CreateGetAssignedOrdersQueryHandler(),
		GetEligibleOffers:   app.CreateGetEligibleOffersQueryHandler(),
		GetNotifications:    app.CreateGetNotificationsQueryHandler(),
		ListComplaints:      app.CreateListComplaintsQueryHandler(),
		GetPlatformStats:    app.CreateGetPlatformStatsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
