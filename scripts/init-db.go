package main

import (
	"fmt"
	"log"

	"event_admin/internal/config"
	"event_admin/internal/database"
	"event_admin/internal/models"
	"event_admin/internal/repository"
	"event_admin/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	// Check if admin already exists
	existingUser, err := userService.GetUserByEmail("admin@example.com")
	if err == nil && existingUser != nil {
		fmt.Println("Admin user already exists")
	} else {
		admin := &models.User{
			Name:     "Administrator",
			Email:    "admin@example.com",
			Role:     string(models.RoleAdmin),
			IsActive: true,
		}
		if err := userService.CreateUser(admin, "admin123"); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			fmt.Println("Admin user created successfully")
			fmt.Println("Email: admin@example.com")
			fmt.Println("Password: admin123")
		}
	}

	// Seed a handful of FAQs
	fmt.Println("Creating default FAQs...")
	faqRepo := repository.NewFAQRepository(db)
	faqs := []models.FAQ{
		{
			Question:    "How far in advance should I book my event?",
			Answer:      "We recommend booking at least 6-8 weeks before your event date. Large events may need more lead time.",
			Category:    "booking",
			SortOrder:   1,
			IsPublished: true,
		},
		{
			Question:    "Do you require a deposit?",
			Answer:      "Yes, a deposit confirms your booking. The remaining balance is due before the event date.",
			Category:    "payment",
			SortOrder:   2,
			IsPublished: true,
		},
		{
			Question:    "Can I cancel my order?",
			Answer:      "Orders can be cancelled before completion. Refund eligibility depends on how close the cancellation is to the event date.",
			Category:    "booking",
			SortOrder:   3,
			IsPublished: true,
		},
	}
	for i := range faqs {
		if err := faqRepo.Create(&faqs[i]); err != nil {
			log.Printf("Warning: Failed to create FAQ: %v", err)
		}
	}

	// Seed sample shop products
	fmt.Println("Creating sample shop products...")
	shopRepo := repository.NewShopRepository(db)
	products := []models.ShopProduct{
		{Name: "Party favor box", Description: "Assorted favors for up to 20 guests", Price: 1500000, InStock: true},
		{Name: "Balloon arch kit", Description: "Self-assembly arch with pump", Price: 4500000, InStock: true},
		{Name: "Table centerpiece set", Description: "Set of 10 floral centerpieces", Price: 8000000, InStock: true},
	}
	for i := range products {
		if err := shopRepo.CreateProduct(&products[i]); err != nil {
			log.Printf("Warning: Failed to create product: %v", err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
