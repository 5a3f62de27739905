package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName   string `json:"appname"`
	AppEnv    string `json:"appenv"`
	AppPort   uint16 `json:"appport"`
	GinMode   string `json:"ginmode"`
	DBPath    string `json:"dbpath"`
	StaticDir string `json:"staticdir"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// Load environment variables from .env file when present.
		if err := godotenv.Load(); err != nil {
			log.Printf("config: no .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 8000
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:   os.Getenv("APPNAME"),
			AppEnv:    os.Getenv("APPENV"),
			AppPort:   uint16(appPort),
			GinMode:   os.Getenv("GINMODE"),
			DBPath:    getEnv("DBPATH", "medical.db"),
			StaticDir: getEnv("STATICDIR", "public"),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

// ConnectDB opens the SQLite store. This is the single acquisition point for
// the database handle; main owns the returned connection and is responsible
// for closing it on shutdown. Tests run against an in-memory database.
func ConnectDB() (*gorm.DB, error) {
	cfg := LoadConfig()

	dsn := cfg.DBPath
	if os.Getenv("APPENV") == "test" || cfg.AppEnv == "test" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
