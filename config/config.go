package config

import (
	"log"

	"food-order-api/models"

	"github.com/glebarez/sqlite"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// defaultJWTSecret is the development fallback signing key, used whenever
// JWT_SECRET is not set.
const defaultJWTSecret = "food_order_super_secret_2026"

// App holds all runtime configuration, read from the environment.
type App struct {
	Port      string `envconfig:"PORT" default:"8080"`
	GinMode   string `envconfig:"GIN_MODE" default:"debug"`
	DBPath    string `envconfig:"DB_PATH" default:"food_order.db"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	Env       string `envconfig:"APP_ENV" default:"development"`
}

var (
	Cfg App
	DB  *gorm.DB

	// JWTSecret signs and verifies bearer tokens. Overwritten from the
	// environment in Init.
	JWTSecret = []byte(defaultJWTSecret)
)

// Load reads App from environment variables.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	if c.JWTSecret == "" {
		c.JWTSecret = defaultJWTSecret
	}
	return c, err
}

// Init loads configuration and connects the database. Fatal on failure —
// the process cannot serve without either.
func Init() App {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	Cfg = cfg
	JWTSecret = []byte(cfg.JWTSecret)
	InitDB(cfg.DBPath)
	return cfg
}

// InitDB opens the sqlite database at path and migrates the schema.
func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.Account{},
		&models.Meal{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// IsDevelopment reports whether internal error detail may be exposed in
// responses.
func IsDevelopment() bool {
	return Cfg.Env != "production"
}
