package main

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"verimail/config"
	"verimail/middleware"
	"verimail/routes"
	"verimail/verifier"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			log.Warnf("Sentry initialization failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	engine := verifier.New(verifier.Config{
		HeloDomain:   config.AppConfig.VerifyHeloDomain,
		MailFrom:     config.AppConfig.VerifyMailFrom,
		ProbeTimeout: time.Duration(config.AppConfig.VerifyTimeoutSecs) * time.Second,
	})

	app := fiber.New()
	app.Use(middleware.CORS(config.AppConfig.CORSOrigin))

	routes.SetupRoutes(app, engine, log)

	log.Infof("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
