package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	UploadDir string

	JWTSecret    string
	AdminTTL     time.Duration
	KitchenTTL   time.Duration
	DeveloperTTL time.Duration

	AdminUser     string
	AdminPass     string
	KitchenPIN    string
	DeveloperUser string
	DeveloperPass string

	ToyyibPaySecret   string
	ToyyibPayCategory string
	ToyyibPayBaseURL  string
	FrontendURL       string
	BackendURL        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:      getEnv("PORT", "4000"),
		DBSource:  getEnv("DB_SOURCE", "data.sqlite"),
		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),

		JWTSecret:    getEnv("JWT_SECRET", "default_insecure_secret_for_dev"),
		AdminTTL:     8 * time.Hour,
		KitchenTTL:   8 * time.Hour,
		DeveloperTTL: 2 * time.Hour,

		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPass:     getEnv("ADMIN_PASS", "admin123"),
		KitchenPIN:    getEnv("KITCHEN_PIN", "1234"),
		DeveloperUser: getEnv("DEVELOPER_USER", "dev"),
		DeveloperPass: getEnv("DEVELOPER_PASS", "dev123"),

		ToyyibPaySecret:   os.Getenv("TOYYIBPAY_SECRET"),
		ToyyibPayCategory: os.Getenv("TOYYIBPAY_CATEGORY"),
		ToyyibPayBaseURL:  getEnv("TOYYIBPAY_BASE_URL", "https://dev.toyyibpay.com"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:5173"),
		BackendURL:        getEnv("BACKEND_URL", "http://localhost:4000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
