package repositories

import (
	"fmt"
	"log"
	"strings"

	"kbbq/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to the store named by dsn and migrates the schema.
// An empty dsn opens a private in-memory SQLite database; postgres URLs and
// key/value DSNs containing host= select Postgres; anything else is treated
// as a SQLite file path.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	inMemory := false
	switch {
	case dsn == "":
		inMemory = true
		dialector = sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if inMemory {
		// The shared-cache database lives only as long as one connection does.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access database pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.MenuItem{}, &models.Category{}, &models.Shop{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return db, nil
}

// CloseDatabase releases the underlying connection pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedMenu is the catalog the restaurant opens with.
var SeedMenu = []models.MenuItem{
	{
		ID:          "KBQ-001",
		Name:        "Prime Galbi (Marinated Short Rib)",
		Category:    "Beef",
		Price:       32.50,
		Unit:        "1 lb",
		Description: "Our signature marinated beef short ribs, pre-cut and ready for grilling.",
		IsAvailable: true,
	},
	{
		ID:          "KBQ-002",
		Name:        "Samgyeopsal (Pork Belly)",
		Category:    "Pork",
		Price:       26.00,
		Unit:        "1 lb",
		Description: "Thick slices of unseasoned pork belly, perfect with ssamjang.",
		IsAvailable: true,
	},
	{
		ID:          "KBQ-003",
		Name:        "Kimchi Jjigae",
		Category:    "Stew & Sides",
		Price:       14.00,
		Unit:        "Bowl",
		Description: "Spicy traditional kimchi stew with pork and tofu. Served hot.",
		IsAvailable: true,
	},
	{
		ID:          "KBQ-004",
		Name:        "Soybean Paste Stew (Doenjang Jjigae)",
		Category:    "Stew & Sides",
		Price:       13.00,
		Unit:        "Bowl",
		Description: "Savory Korean soybean paste stew with vegetables.",
		IsAvailable: false,
	},
}

var SeedCategories = []string{"BBQ", "Bibimbap", "Sides", "Drinks"}

var SeedShops = []models.Shop{
	{ID: "KL-01", Name: "Seoul Grill KL", IsOpen: true},
	{ID: "PJ-02", Name: "Seoul Grill PJ", IsOpen: false},
}

// Seed fills empty menu, category and shop tables with the opening catalog.
// Tables that already hold rows are left untouched.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		empty, err := isEmpty(tx, &models.MenuItem{})
		if err != nil {
			return err
		}
		if empty {
			items := make([]models.MenuItem, len(SeedMenu))
			copy(items, SeedMenu)
			for i := range items {
				items[i].Position = i + 1
			}
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to seed menu: %w", err)
			}
			log.Printf("[seed] menu: %d items", len(items))
		}

		if empty, err = isEmpty(tx, &models.Category{}); err != nil {
			return err
		}
		if empty {
			categories := make([]models.Category, len(SeedCategories))
			for i, name := range SeedCategories {
				categories[i] = models.Category{Name: name, Position: i + 1}
			}
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			log.Printf("[seed] categories: %d", len(categories))
		}

		if empty, err = isEmpty(tx, &models.Shop{}); err != nil {
			return err
		}
		if empty {
			shops := make([]models.Shop, len(SeedShops))
			copy(shops, SeedShops)
			if err := tx.Create(&shops).Error; err != nil {
				return fmt.Errorf("failed to seed shops: %w", err)
			}
			log.Printf("[seed] shops: %d", len(shops))
		}
		return nil
	})
}

func isEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to count %T: %w", model, err)
	}
	return n == 0, nil
}
