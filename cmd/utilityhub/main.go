package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/utilityhub/UtilityHub/app/repository"
	"github.com/utilityhub/UtilityHub/internal/pkg/cache"
	"github.com/utilityhub/UtilityHub/internal/pkg/database"
	"github.com/utilityhub/UtilityHub/internal/pkg/env"
	"github.com/utilityhub/UtilityHub/internal/pkg/overdue"
	"github.com/utilityhub/UtilityHub/internal/pkg/router"
)

func main() {
	app, sweeper := NewApplication()
	defer sweeper.Stop()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, *overdue.Sweeper) {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	sweeper := newSweeper()
	sweeper.Start()

	app := fiber.New(fiber.Config{
		AppName: "UtilityHub",
	})

	app.Use(recover.New(), logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	router.InstallRouter(app)

	return app, sweeper
}

func newSweeper() *overdue.Sweeper {
	interval, err := time.ParseDuration(env.GetEnv("SWEEP_INTERVAL", "15m"))
	if err != nil {
		interval = 15 * time.Minute
	}
	readingMaxAge, err := time.ParseDuration(env.GetEnv("READING_MAX_AGE", "720h"))
	if err != nil {
		readingMaxAge = 30 * 24 * time.Hour
	}

	factory := repository.GetGlobalFactory()
	return overdue.NewSweeper(
		factory.GetBillRepository(),
		factory.GetMeterReadingRepository(),
		interval,
		readingMaxAge,
	)
}
