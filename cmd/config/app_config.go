package config

import (
	"FreshKeep-Backend/internal/api/handlers"
	"FreshKeep-Backend/internal/api/routes"
	"FreshKeep-Backend/internal/middleware"
	"FreshKeep-Backend/internal/utils"
	"FreshKeep-Backend/internal/utils/storage"
	"FreshKeep-Backend/pkg/fridge"
	"FreshKeep-Backend/pkg/jwt"
	"FreshKeep-Backend/pkg/label"
	"FreshKeep-Backend/pkg/product"
	"FreshKeep-Backend/pkg/shopping"
	"FreshKeep-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Moscow",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	productRepository := product.NewProductRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService(time.Now)
	userService := user.NewUserService(userRepository, jwtService, time.Now)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	productService := product.NewProductService(
		productRepository,
		fridgeRepository,
		shoppingRepository,
		time.Now,
	)
	shoppingService := shopping.NewShoppingService(shoppingRepository, productRepository, time.Now)
	labelService := label.NewLabelService(s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService)
	labelHandler := handlers.NewLabelHandler(labelService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FridgeHandler:   fridgeHandler,
		ProductHandler:  productHandler,
		ShoppingHandler: shoppingHandler,
		LabelHandler:    labelHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
