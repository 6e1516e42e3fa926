package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmednasr/product-compare/internal/service"
)

// NewApp creates the Fiber app with middleware and every route mounted.
func NewApp(cfg fiber.Config, chatSvc service.ChatService, catalogSource string, mainDB *mongo.Client) *fiber.App {
	cfg.ErrorHandler = ErrorHandler
	app := fiber.New(cfg)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(Logging())

	RegisterRoutes(app, chatSvc)
	NewHealthHandler(catalogSource, mainDB).Register(app)
	return app
}

func RegisterRoutes(app *fiber.App, chatSvc service.ChatService) {
	v1 := app.Group("/api/v1")
	NewChatHandler(chatSvc).Register(v1)
	NewProductHandler(chatSvc).Register(v1)
}
