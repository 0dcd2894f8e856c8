package main

import (
	"fmt"
	"net/http"
	"os"

	"booking/cmd"
	httpserver "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/postgres/contactrepo"
	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/adapters/out/postgres/translatorrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		PushGatewayURL:      goDotEnvVariable("PUSH_GATEWAY_URL"),
		SMSGatewayURL:       goDotEnvVariable("SMS_GATEWAY_URL"),
		NotifyAPIKey:        goDotEnvVariable("NOTIFY_API_KEY"),
		ReminderLeadMinutes: goDotEnvVariable("REMINDER_LEAD_MINUTES"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.DistanceRecordDTO{},
		&translatorrepo.TranslatorDTO{},
		&translatorrepo.TranslatorLanguageDTO{},
		&contactrepo.CustomerContactDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateUpdateJobCommandHandler(),
		app.CreateAcceptJobCommandHandler(),
		app.CreateStartJobCommandHandler(),
		app.CreateEndJobCommandHandler(),
		app.CreateCancelJobCommandHandler(),
		app.CreateCustomerNotCallCommandHandler(),
		app.CreateReopenJobCommandHandler(),
		app.CreateUpdateAdminMetadataCommandHandler(),
		app.CreateResendNotificationsCommandHandler(),
		app.CreateResendSMSCommandHandler(),
		app.CreateGetJobQueryHandler(),
		app.CreateGetUserJobsQueryHandler(),
		app.CreateGetJobHistoryQueryHandler(),
		app.CreateGetAllJobsQueryHandler(),
		app.CreateGetPotentialJobsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
