package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a super admin account and, with --demo, a small demo catalog.
// Usage: go run cmd/seed/main.go [--demo]
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELORA STOREFRONT - Super Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	email, password, name := getAdminCredentials()

	var existingAdmin models.Admin
	err := config.DB.Where("email = ?", email).First(&existingAdmin).Error
	if err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: string(passwordHash),
		Role:         "super_admin",
		Status:       "active",
	}
	if err := config.DB.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Println()

	if len(os.Args) > 1 && os.Args[1] == "--demo" {
		seedDemoCatalog()
	}

	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token (or cookie) for admin requests")
	fmt.Println()
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) >= 8 {
			break
		}
		fmt.Println("❌ Password must be at least 8 characters")
	}

	return email, password, name
}

// seedDemoCatalog inserts a small category tree, a few products and some
// marketing content so the storefront has something to show out of the box.
func seedDemoCatalog() {
	fmt.Println("Seeding demo catalog...")

	bags := models.Category{Name: "Bags", Slug: "bags", Status: "Active"}
	shoes := models.Category{Name: "Shoes", Slug: "shoes", Status: "Active"}
	for _, parent := range []*models.Category{&bags, &shoes} {
		if err := config.DB.Where("slug = ?", parent.Slug).FirstOrCreate(parent).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", parent.Name, err)
		}
	}

	totes := models.Category{Name: "Totes", Slug: "totes", Status: "Active", ParentID: &bags.ID}
	sneakers := models.Category{Name: "Sneakers", Slug: "sneakers", Status: "Active", ParentID: &shoes.ID}
	for _, child := range []*models.Category{&totes, &sneakers} {
		if err := config.DB.Where("slug = ?", child.Slug).FirstOrCreate(child).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", child.Name, err)
		}
	}
	log.Println("✓ Categories seeded")

	discount := 39.99
	products := []models.Product{
		{
			Name:        "Canvas Tote",
			Description: "Everyday canvas tote bag",
			Brand:       "Velora",
			Price:       49.99,
			CategoryID:  totes.ID,
			Images:      models.ImageList{"https://res.cloudinary.com/demo/velora/canvas-tote.jpg"},
			Rating:      4.5,
			NumReviews:  12,
			Stock:       120,
			IsActive:    true,
		},
		{
			Name:          "Court Sneaker",
			Description:   "Low-top leather sneaker",
			Brand:         "Stride",
			Price:         89.99,
			DiscountPrice: &discount,
			CategoryID:    sneakers.ID,
			Images:        models.ImageList{"https://res.cloudinary.com/demo/velora/court-sneaker.jpg"},
			Rating:        4.8,
			NumReviews:    34,
			Stock:         48,
			IsActive:      true,
		},
	}
	for i := range products {
		if err := config.DB.Where("name = ?", products[i].Name).FirstOrCreate(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
	}
	log.Println("✓ Products seeded")

	banner := models.HeroBanner{
		Title:    "New Season, New Looks",
		Subtitle: "Fresh arrivals across bags and shoes",
		ImageURL: "https://res.cloudinary.com/demo/velora/hero-season.jpg",
		CTALabel: "Shop now",
		CTAURL:   "/products",
		IsActive: true,
	}
	if err := config.DB.Where("title = ?", banner.Title).FirstOrCreate(&banner).Error; err != nil {
		log.Fatalf("Failed to seed hero banner: %v", err)
	}

	entries := []models.SectionEntry{
		{Section: models.SectionBestSellers, ProductID: products[1].ID, IsActive: true},
		{Section: models.SectionNewArrivals, ProductID: products[0].ID, IsActive: true},
	}
	for i := range entries {
		err := config.DB.
			Where("section = ? AND product_id = ?", entries[i].Section, entries[i].ProductID).
			FirstOrCreate(&entries[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed section entry: %v", err)
		}
	}

	faq := models.FAQ{
		Question: "How long does shipping take?",
		Answer:   "Orders ship within 2 business days and arrive in 3 to 7 days.",
		IsActive: true,
	}
	if err := config.DB.Where("question = ?", faq.Question).FirstOrCreate(&faq).Error; err != nil {
		log.Fatalf("Failed to seed FAQ: %v", err)
	}

	log.Println("✓ Marketing content seeded")
	fmt.Println()
}
