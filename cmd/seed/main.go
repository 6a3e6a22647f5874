package main

import (
	"fmt"
	"time"

	"fanbase/internal/model"
	"fanbase/pkg/config"
	"fanbase/pkg/database"
	"fanbase/pkg/logger"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		name     string
		username string
		email    string
		creator  bool
	}{
		{"Alice", "alice_fan", "alice@test.com", false},
		{"Bob", "bob_fan", "bob@test.com", false},
		{"Carla", "carla_creates", "carla@test.com", true},
		{"Dmitri", "dmitri_art", "dmitri@test.com", true},
		{"Eve", "eve_music", "eve@test.com", true},
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, data := range testUsers {
		var existing model.UserModel
		result := db.Where("email = ? OR username = ?", data.email, data.username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", data.username)
			userIDs[data.username] = existing.ID
			continue
		}

		role := "FAN"
		if data.creator {
			role = "CREATOR"
		}
		user := &model.UserModel{
			Name:           data.name,
			Username:       data.username,
			Email:          data.email,
			Password:       string(hashedPassword),
			IsFan:          true,
			IsCreator:      data.creator,
			LastActiveRole: role,
			MonthlyPrice:   9,
			YearlyPrice:    99,
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", data.username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs[data.username] = user.ID

		wallet := &model.WalletModel{UserID: user.ID, Balance: 1000}
		if err := db.Create(wallet).Error; err != nil {
			log.Error("Failed to create wallet for %s: %v", user.Username, err)
		}
	}

	category := &model.CategoryModel{Name: "Merch"}
	if err := db.Where("name = ?", category.Name).FirstOrCreate(category).Error; err != nil {
		log.Error("Failed to create category: %v", err)
	}

	posts := []model.PostModel{
		{
			UserID:           userIDs["carla_creates"],
			Title:            "Welcome to my page",
			Description:      "First post, free for everyone.",
			Type:             "TEXT",
			Status:           "ACTIVE",
			AccessIdentifier: "FREE",
		},
		{
			UserID:           userIDs["dmitri_art"],
			Title:            "Sketchbook pages",
			Description:      "Early access for subscribers.",
			Type:             "IMAGE",
			Status:           "ACTIVE",
			AccessIdentifier: "SUBSCRIPTION",
			Images:           pq.StringArray{"https://example.com/sketch1.jpg"},
		},
		{
			UserID:           userIDs["eve_music"],
			Title:            "Unreleased demo",
			Description:      "One-time unlock.",
			Type:             "AUDIO",
			Status:           "ACTIVE",
			AccessIdentifier: "PAID",
			Price:            4.99,
		},
	}
	for i := range posts {
		if posts[i].UserID == "" {
			continue
		}
		var count int64
		db.Model(&model.PostModel{}).
			Where("user_id = ? AND title = ?", posts[i].UserID, posts[i].Title).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Error("Failed to create post %q: %v", posts[i].Title, err)
			continue
		}
		log.Info("Created post: %s", posts[i].Title)
	}

	product := &model.ProductModel{
		UserID:      userIDs["carla_creates"],
		CategoryID:  category.ID,
		Name:        "Signed print",
		Description: "Limited run of 50.",
		Price:       25,
		Stock:       50,
		Kind:        "PHYSICAL",
	}
	if product.UserID != "" {
		var count int64
		db.Model(&model.ProductModel{}).
			Where("user_id = ? AND name = ?", product.UserID, product.Name).
			Count(&count)
		if count == 0 {
			if err := db.Create(product).Error; err != nil {
				log.Error("Failed to create product: %v", err)
			} else {
				log.Info("Created product: %s", product.Name)
			}
		}
	}

	if fan, creator := userIDs["alice_fan"], userIDs["eve_music"]; fan != "" && creator != "" {
		var count int64
		db.Model(&model.SubscriptionModel{}).
			Where("user_id = ? AND creator_id = ?", fan, creator).
			Count(&count)
		if count == 0 {
			now := time.Now()
			sub := &model.SubscriptionModel{
				UserID:     fan,
				CreatorID:  creator,
				Tier:       "MONTHLY",
				Status:     "ACTIVE",
				StartDate:  now,
				ExpiryDate: now.AddDate(0, 1, 0),
			}
			if err := db.Create(sub).Error; err != nil {
				log.Error("Failed to create subscription: %v", err)
			} else {
				db.Model(&model.UserModel{}).Where("id = ?", creator).
					UpdateColumn("total_subscribers", gorm.Expr("total_subscribers + 1"))
				log.Info("Created subscription: alice_fan -> eve_music")
			}
		}
	}

	return nil
}
