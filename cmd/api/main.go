package main

import (
	"log"
	"time"

	config "github.com/coachledger/marketplace/configs"
	"github.com/coachledger/marketplace/jobs"
	"github.com/coachledger/marketplace/routes"
	"github.com/coachledger/marketplace/state"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	state.Init()

	// Logical time is environment-supplied: one cron tick, one height unit.
	c := cron.New()
	tick := "@every " + config.ConfigOr("CHAIN_TICK_INTERVAL", "10s")
	if _, err := c.AddFunc(tick, jobs.AdvanceChainHeight); err != nil {
		log.Fatalf("🔥 Failed to schedule chain height ticker: %v", err)
	}
	go c.Start()
	log.Println("✅ Chain height ticker scheduled:", tick)

	app := fiber.New(fiber.Config{
		AppName:       "Coach Marketplace",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app)
	routes.AccountRoutes(app)
	routes.CredentialRoutes(app)
	routes.ListingRoutes(app)
	routes.BookingRoutes(app)
	routes.AdminRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Println("✅ Server is running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
