package main

import (
	"log"

	"github.com/solankismit/exambuddy/config"
	"github.com/solankismit/exambuddy/database"
	authRoutes "github.com/solankismit/exambuddy/routers/authRoutes"
	examRoutes "github.com/solankismit/exambuddy/routers/examRoutes"
	progressRoutes "github.com/solankismit/exambuddy/routers/progressRoutes"
	quizRoutes "github.com/solankismit/exambuddy/routers/quizRoutes"
	userRoutes "github.com/solankismit/exambuddy/routers/userRoutes"
	"github.com/solankismit/exambuddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	examRoutes.SetupExamRoutes(app)
	examRoutes.SetupAdminExamRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	userRoutes.SetupUserRoutes(app)

	utils.StartProgressScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
