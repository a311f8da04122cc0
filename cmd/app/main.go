package main

import (
	"fmt"
	"net/http"
	"os"
	"parceltrack/cmd"
	trackinghttp "parceltrack/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort: goDotEnvVariable("HTTP_PORT"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := trackinghttp.NewServer(
		app.CreateRegisterParcelCommandHandler(),
		app.CreateUpdateParcelWeightCommandHandler(),
		app.CreateLoadParcelCommandHandler(),
		app.CreateDispatchParcelCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateUndoCommandHandler(),
		app.CreateGetActiveParcelsQueryHandler(),
		app.CreateGetSummaryReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
