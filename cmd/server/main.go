package main

import (
	"log"
	"time"

	"event_admin/internal/config"
	"event_admin/internal/database"
	"event_admin/internal/handlers"
	"event_admin/internal/redis"
	"event_admin/internal/repository"
	"event_admin/internal/services"
	"event_admin/pkg/push"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Ensuring database schema is up to date...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize push gateway client
	pushClient := push.NewClient(cfg.PushGatewayURL, cfg.PushGatewayUser, cfg.PushGatewayPass)

	// Initialize media store
	mediaStore, err := services.NewS3Store(cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSS3Bucket)
	if err != nil {
		log.Fatal("Failed to initialize media store:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	shopRepo := repository.NewShopRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	faqRepo := repository.NewFAQRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	unreadCacheTTL := time.Duration(cfg.UnreadCacheTTL) * time.Second

	userService := services.NewUserService(userRepo)
	notificationService := services.NewNotificationService(notificationRepo, pushClient)
	chatService := services.NewChatService(conversationRepo, notificationService, redisClient, unreadCacheTTL)
	orderService := services.NewOrderService(orderRepo, chatService, notificationService, redisClient, cacheTTL)
	shopService := services.NewShopService(shopRepo, notificationService)
	mediaService := services.NewMediaService(mediaRepo, mediaStore)
	staffService := services.NewStaffService(staffRepo, mediaService)
	faqService := services.NewFAQService(faqRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)
	chatHandler := handlers.NewChatHandler(chatService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	shopHandler := handlers.NewShopHandler(shopService)
	staffHandler := handlers.NewStaffHandler(staffService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	faqHandler := handlers.NewFAQHandler(faqService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
		api.POST("/login", userHandler.Login)

		// Orders
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.GetOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		api.POST("/orders/:id/quote", orderHandler.CreateQuote)
		api.POST("/orders/:id/payments", orderHandler.AddPayment)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		// Conversations
		api.POST("/conversations", chatHandler.GetOrCreateConversation)
		api.GET("/conversations/:id", chatHandler.GetConversation)
		api.PUT("/conversations/:id/status", chatHandler.UpdateConversationStatus)
		api.POST("/conversations/:id/messages", chatHandler.SendMessage)
		api.GET("/conversations/:id/messages", chatHandler.GetMessages)
		api.POST("/conversations/:id/delivered", chatHandler.MarkDelivered)
		api.POST("/conversations/:id/read", chatHandler.MarkRead)
		api.GET("/users/:id/conversations", chatHandler.GetConversationsByUser)
		api.GET("/users/:id/unread", chatHandler.GetUnreadTotal)

		// Notifications
		api.POST("/notifications", notificationHandler.Send)
		api.POST("/notifications/schedule", notificationHandler.Schedule)
		api.POST("/notifications/:id/cancel", notificationHandler.CancelScheduled)
		api.GET("/users/:id/notifications", notificationHandler.GetByRecipient)
		api.POST("/devices", notificationHandler.RegisterDevice)
		api.DELETE("/devices", notificationHandler.UnregisterDevice)

		// Shop
		api.POST("/shop/products", shopHandler.CreateProduct)
		api.GET("/shop/products", shopHandler.GetProducts)
		api.GET("/shop/products/:id", shopHandler.GetProduct)
		api.PUT("/shop/products/:id", shopHandler.UpdateProduct)
		api.DELETE("/shop/products/:id", shopHandler.DeleteProduct)
		api.POST("/shop/orders", shopHandler.CreateOrder)
		api.GET("/shop/orders", shopHandler.GetOrders)
		api.GET("/shop/orders/:id", shopHandler.GetOrder)
		api.PUT("/shop/orders/:id/status", shopHandler.UpdateOrderStatus)
		api.POST("/shop/orders/:id/cancel", shopHandler.CancelOrder)

		// Staff
		api.POST("/staff", staffHandler.CreateStaff)
		api.GET("/staff", staffHandler.GetAllStaff)
		api.GET("/staff/:id", staffHandler.GetStaff)
		api.PUT("/staff/:id", staffHandler.UpdateStaff)
		api.PUT("/staff/:id/photo", staffHandler.SetPhoto)
		api.DELETE("/staff/:id", staffHandler.DeleteStaff)

		// Media
		api.POST("/media", mediaHandler.Upload)
		api.GET("/media", mediaHandler.GetByCategory)
		api.GET("/media/:id", mediaHandler.Get)
		api.DELETE("/media/:id", mediaHandler.Delete)

		// FAQs
		api.POST("/faqs", faqHandler.CreateFAQ)
		api.GET("/faqs", faqHandler.GetFAQs)
		api.GET("/faqs/:id", faqHandler.GetFAQ)
		api.PUT("/faqs/:id", faqHandler.UpdateFAQ)
		api.DELETE("/faqs/:id", faqHandler.DeleteFAQ)
	}

	// Scheduled notification dispatcher
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			if err := notificationService.ProcessScheduled(now); err != nil {
				log.Printf("warning: scheduled notification pass failed: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
