package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/bizcard/internal/config"
	"github.com/example/bizcard/internal/database"
	"github.com/example/bizcard/internal/models"
	"github.com/example/bizcard/internal/utils"
)

// Seeds a local database with a demo admin, a demo business account and a
// few listings. Safe to run repeatedly: existing emails are left alone.

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	admin := seedUser(db, models.User{
		FirstName:  "Ada",
		LastName:   "Stone",
		Phone:      "052-000-0001",
		Email:      "admin@bizcard.local",
		Address:    models.Address{Country: "Israel", City: "Tel Aviv", Street: "Rothschild Blvd", HouseNumber: 1},
		IsBusiness: true,
		IsAdmin:    true,
	}, "admin123")

	owner := seedUser(db, models.User{
		FirstName:  "Noa",
		LastName:   "Barak",
		Phone:      "052-000-0002",
		Email:      "business@bizcard.local",
		Address:    models.Address{Country: "Israel", City: "Ramat Gan", Street: "Bialik Street", HouseNumber: 15},
		IsBusiness: true,
	}, "business123")

	seedUser(db, models.User{
		FirstName: "Eli",
		LastName:  "Peretz",
		Phone:     "052-000-0003",
		Email:     "user@bizcard.local",
		Address:   models.Address{Country: "Israel", City: "Haifa", Street: "Herzl Street", HouseNumber: 8},
	}, "user123")

	zip := 64332
	seedCard(db, models.Card{
		Title:       "Olive & Sage Cafe",
		Subtitle:    "Vegan Bistro",
		Description: "A cozy vegan bistro offering fresh, plant-based Mediterranean cuisine with organic ingredients, homemade pastries and artisanal coffee.",
		Phone:       "052-123-4567",
		Image: models.Image{
			URL: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
			Alt: "Olive & Sage Cafe interior",
		},
		Address:   models.Address{Country: "Israel", City: "Tel Aviv", Street: "Dizengoff Street", HouseNumber: 42, Zip: &zip},
		CreatedBy: owner.ID,
	})

	seedCard(db, models.Card{
		Title:       "Spark Cleaners",
		Subtitle:    "Professional Home Cleaning",
		Description: "Professional cleaning services for homes and offices, using eco-friendly products and modern equipment. Licensed, insured and fully bonded.",
		Phone:       "052-234-5678",
		Address:     models.Address{Country: "Israel", City: "Ramat Gan", Street: "Bialik Street", HouseNumber: 15},
		CreatedBy:   owner.ID,
	})

	seedCard(db, models.Card{
		Title:       "TechFix Solutions",
		Subtitle:    "Computer & Phone Repair",
		Description: "Expert repair services for computers, smartphones and tablets. Fast turnaround, warranty on all repairs and competitive pricing.",
		Phone:       "052-345-6789",
		Address:     models.Address{Country: "Israel", City: "Haifa", Street: "Herzl Street", HouseNumber: 23},
		CreatedBy:   owner.ID,
	})

	log.Printf("seed complete: admin=%s owner=%s", admin.Email, owner.Email)
}

func seedUser(db *gorm.DB, user models.User, password string) *models.User {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return &existing
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("seed: lookup %s: %v", user.Email, err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}
	user.PasswordHash = hash

	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("seed: create %s: %v", user.Email, err)
	}

	return &user
}

func seedCard(db *gorm.DB, card models.Card) {
	var count int64
	if err := db.Model(&models.Card{}).
		Where("title = ? AND created_by = ?", card.Title, card.CreatedBy).
		Count(&count).Error; err != nil {
		log.Fatalf("seed: lookup card %q: %v", card.Title, err)
	}
	if count > 0 {
		return
	}

	if err := db.Create(&card).Error; err != nil {
		log.Fatalf("seed: create card %q: %v", card.Title, err)
	}
}
