package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"studypal_server/src/config"
	"studypal_server/src/controllers"
	"studypal_server/src/lib"
	"studypal_server/src/middleware"
	"studypal_server/src/routes"
	"studypal_server/src/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	client, db, err := lib.ConnectDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	log.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")

	// Storage context is built once here and injected into each service.
	partnerService := &services.PartnerService{Partners: db.Collection("partners")}
	requestService := &services.RequestService{Requests: db.Collection("requests")}
	matchService := &services.MatchService{Partners: partnerService, Requests: requestService}
	userService := &services.UserService{Users: db.Collection("users")}
	testimonialService := &services.TestimonialService{Testimonials: db.Collection("testimonials")}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(middleware.Metrics())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Get("/metrics", middleware.MetricsHandler())

	routes.PartnerRoutes(app, controllers.NewPartnerController(partnerService), controllers.NewMatchController(matchService))
	routes.ConnectionRoutes(app, controllers.NewConnectionController(requestService))
	routes.UserRoutes(app, controllers.NewUserController(userService))
	routes.TestimonialRoutes(app, controllers.NewTestimonialController(testimonialService))

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
