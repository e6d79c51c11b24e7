// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Store       StoreConfig
	Catalog     CatalogConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// StoreConfig carries the storefront identity used when composing order and
// contact mails.
type StoreConfig struct {
	Name           string
	OrderEmail     string
	CurrencySuffix string
	Location       string
}

type CatalogConfig struct {
	ProductsPath string
	GlossaryPath string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Store: StoreConfig{
			Name:           getEnv("STORE_NAME", "Espace Naturaē"),
			OrderEmail:     getEnv("STORE_ORDER_EMAIL", "info@espacenaturae.ca"),
			CurrencySuffix: getEnv("STORE_CURRENCY_SUFFIX", "$"),
			Location:       getEnv("STORE_LOCATION", "Granby, Québec"),
		},
		Catalog: CatalogConfig{
			ProductsPath: getEnv("CATALOG_PRODUCTS_PATH", "./data/catalog.json"),
			GlossaryPath: getEnv("CATALOG_GLOSSARY_PATH", "./data/glossary.json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Store.OrderEmail == "" {
		return fmt.Errorf("store order email is required")
	}

	if c.Catalog.ProductsPath == "" || c.Catalog.GlossaryPath == "" {
		return fmt.Errorf("catalog data paths are required")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
