package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"paradise/internal/config"
	"paradise/internal/database"
	"paradise/internal/domain"
	"paradise/internal/repository"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin account email")
	password := flag.String("password", "admin123", "admin account password")
	demo := flag.Bool("demo", false, "also seed demo portfolio and products")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	seedAdmin(ctx, db, *email, *password)

	if *demo {
		seedDemoContent(ctx, db)
	}
}

func seedAdmin(ctx context.Context, db *gorm.DB, email, password string) {
	users := repository.NewUserRepository(db)

	if _, err := users.GetByEmail(ctx, email); err == nil {
		log.Printf("admin %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Администратор",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("created admin %s (id=%d)", email, admin.ID)
}

func seedDemoContent(ctx context.Context, db *gorm.DB) {
	portfolio := repository.NewPortfolioRepository(db)
	products := repository.NewProductRepository(db)

	items := []domain.PortfolioItem{
		{
			Image:         "/media/portfolio/woven-demo.jpg",
			TitleRU:       "Этикетки для швейной фабрики",
			TitleEN:       "Labels for a garment factory",
			DescriptionRU: "Партия жаккардовых этикеток с логотипом бренда",
			DescriptionEN: "A run of jacquard labels with the brand logo",
			Category:      domain.CategoryWovenLabels,
			IsPublished:   true,
		},
		{
			Image:         "/media/portfolio/tags-demo.jpg",
			TitleRU:       "Навесные бирки из крафта",
			DescriptionRU: "Бирки из крафтового картона с тиснением",
			Category:      domain.CategoryHangTags,
			Order:         1,
			IsPublished:   true,
		},
	}
	for i := range items {
		if err := portfolio.Create(ctx, &items[i]); err != nil {
			log.Fatalf("seed portfolio: %v", err)
		}
	}

	demoProducts := []domain.Product{
		{
			Slug:          "woven-labels",
			MainImage:     "/media/products/woven.jpg",
			NameRU:        "Вшивные этикетки",
			NameEN:        "Woven Labels",
			NameUZ:        "Tikilgan yorliqlar",
			DescriptionRU: "Жаккардовые этикетки любой сложности",
			DescriptionEN: "Jacquard labels of any complexity",
			Category:      domain.CategoryWovenLabels,
			Features: datatypes.NewJSONType(map[string][]string{
				"ru": {"Плотное плетение", "Стойкие цвета", "От 500 штук"},
				"en": {"Dense weave", "Colorfast", "From 500 pcs"},
			}),
			IsPublished: true,
			IsFeatured:  true,
		},
		{
			Slug:          "hang-tags",
			MainImage:     "/media/products/tags.jpg",
			NameRU:        "Навесные бирки",
			NameEN:        "Hang Tags",
			DescriptionRU: "Бирки из картона и крафта с печатью и тиснением",
			Category:      domain.CategoryHangTags,
			Order:         1,
			IsPublished:   true,
		},
	}
	for i := range demoProducts {
		if err := products.Create(ctx, &demoProducts[i]); err != nil {
			log.Fatalf("seed products: %v", err)
		}
	}

	log.Printf("seeded %d portfolio items, %d products", len(items), len(demoProducts))
}
