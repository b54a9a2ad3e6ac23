package routes

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/middleware"
	"FreshKeep-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FridgeHandler   handlers.FridgeHandler
	ProductHandler  handlers.ProductHandler
	ShoppingHandler handlers.ShoppingHandler
	LabelHandler    handlers.LabelHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Fridges()
	c.Products()
	c.Shopping()
	c.Labels()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh", c.UserHandler.Refresh)
		user.Post("/logout", c.UserHandler.Logout)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Fridges() {
	fridges := c.App.Group("/api/v1/fridges", c.Middleware.AuthMiddleware(c.JWTService))

	fridges.Post("", c.FridgeHandler.CreateFridge)
	fridges.Get("", c.FridgeHandler.GetFridges)
	fridges.Delete("/:id", c.FridgeHandler.DeleteFridge)
	fridges.Get("/:id/products", c.ProductHandler.GetProducts)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Post("", c.ProductHandler.IngestProduct)
	products.Delete("/:id", c.ProductHandler.RemoveProduct)
	products.Post("/:id/cart", c.ProductHandler.MoveToCart)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Get("", c.ShoppingHandler.GetShoppingItems)
	shopping.Get("/stats", c.ShoppingHandler.GetTopProducts)
	shopping.Post("/:id/purchase", c.ShoppingHandler.MarkPurchased)
	shopping.Delete("/:id", c.ShoppingHandler.RemoveFromCart)
}

func (c *Config) Labels() {
	labels := c.App.Group("/api/v1/labels", c.Middleware.AuthMiddleware(c.JWTService))

	labels.Post("", c.LabelHandler.GenerateLabel)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
