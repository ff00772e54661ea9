package main

import (
	"log"
	"os"
	"time"

	"sports-academy-be/internal/model"
	"sports-academy-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Sports Academy catalog...")

	seedAdmin(db)
	categories := seedCategories(db)
	seedPlans(db, categories)
	seedSampleStudent(db)

	color.Green("Seeding completed!")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@academy.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using default (change it!)")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash admin password: %v", err)
	}

	admin := model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Academy Admin",
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: failed to create admin user: %v", err)
	}
	color.Green("Created admin user: %s", email)
}

func seedCategories(db *gorm.DB) map[string]model.Category {
	categories := []model.Category{
		{Name: "Football", Description: "Football training for all age groups", IsActive: true},
		{Name: "Basketball", Description: "Basketball fundamentals and team play", IsActive: true},
		{Name: "Swimming", Description: "Swimming lessons from beginner to competitive", IsActive: true},
		{Name: "Tennis", Description: "Tennis coaching, singles and doubles", IsActive: true},
	}

	byName := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		var existing model.Category
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			color.Yellow("Category '%s' already exists, skipping...", c.Name)
			byName[c.Name] = existing
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Name, err)
			continue
		}
		color.Green("Created category: %s", c.Name)
		byName[c.Name] = c
	}
	return byName
}

func seedPlans(db *gorm.DB, categories map[string]model.Category) {
	sessions4 := 4
	sessions12 := 12
	nextMonth := time.Now().AddDate(0, 1, 0)
	uses100 := 100

	plans := []struct {
		plan       model.SubscriptionPlan
		categories []string
		discounts  []model.DiscountCode
	}{
		{
			plan: model.SubscriptionPlan{
				Name:          "Starter Monthly",
				Description:   "Four sessions per month, any single sport",
				PriceAmount:   100,
				PriceCurrency: "USD",
				DurationValue: 1,
				DurationUnit:  "months",
				MaxSessions:   &sessions4,
				IsActive:      true,
				SortOrder:     1,
			},
			categories: []string{"Football", "Basketball"},
			discounts: []model.DiscountCode{
				{Code: "WELCOME10", Percentage: 10, ValidUntil: &nextMonth, MaxUses: &uses100},
			},
		},
		{
			plan: model.SubscriptionPlan{
				Name:          "Intensive Monthly",
				Description:   "Twelve sessions per month across all sports",
				PriceAmount:   250,
				PriceCurrency: "USD",
				DurationValue: 1,
				DurationUnit:  "months",
				MaxSessions:   &sessions12,
				IsActive:      true,
				SortOrder:     2,
			},
			categories: []string{"Football", "Basketball", "Swimming", "Tennis"},
		},
		{
			plan: model.SubscriptionPlan{
				Name:          "Unlimited Annual",
				Description:   "Unlimited sessions for a full year",
				PriceAmount:   2000,
				PriceCurrency: "USD",
				DurationValue: 1,
				DurationUnit:  "years",
				MaxSessions:   nil,
				IsActive:      true,
				SortOrder:     3,
			},
			categories: []string{"Football", "Basketball", "Swimming", "Tennis"},
			discounts: []model.DiscountCode{
				{Code: "ANNUAL20", Percentage: 20},
			},
		},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("name = ?", p.plan.Name).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.plan.Name)
			continue
		}

		for _, name := range p.categories {
			if cat, ok := categories[name]; ok {
				c := cat
				p.plan.Categories = append(p.plan.Categories, &c)
			}
		}

		if err := db.Create(&p.plan).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.plan.Name, err)
			continue
		}
		color.Green("Created plan: %s (%.2f %s)", p.plan.Name, p.plan.PriceAmount, p.plan.PriceCurrency)

		for _, d := range p.discounts {
			d.PlanId = p.plan.Id
			if err := db.Create(&d).Error; err != nil {
				log.Printf("Error creating discount '%s': %v", d.Code, err)
				continue
			}
			color.Green("  Added discount code: %s (%.0f%%)", d.Code, d.Percentage)
		}
	}
}

func seedSampleStudent(db *gorm.DB) {
	var existing model.Student
	if err := db.Where("email = ?", "jamie.doe@example.com").First(&existing).Error; err == nil {
		color.Yellow("Sample student already exists, skipping...")
		return
	}

	student := model.Student{
		FullName: "Jamie Doe",
		Email:    "jamie.doe@example.com",
		Phone:    "+1-555-0100",
		Guardian: "Alex Doe",
		JoinedAt: time.Now(),
		IsActive: true,
	}
	if err := db.Create(&student).Error; err != nil {
		log.Printf("Error creating sample student: %v", err)
		return
	}
	color.Green("Created sample student: %s", student.FullName)
}
