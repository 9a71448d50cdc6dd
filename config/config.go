package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Quoting.
	TaxRate float64 `mapstructure:"TAX_RATE"`

	// Google Maps / Places API key for geocoding and address search.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// Bridge Data (RESO Web API) property enrichment.
	BridgeAPIURL   string `mapstructure:"BRIDGE_API_URL"`
	BridgeAPIToken string `mapstructure:"BRIDGE_API_TOKEN"`

	// Stripe key for invoice payouts.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Cloudinary URL for shoot media storage.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`

	// Firebase service-account credentials file for FCM pushes.
	FirebaseCredFile string `mapstructure:"FIREBASE_CRED_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "shootflow")
	viper.SetDefault("TAX_RATE", 0.08)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("BRIDGE_API_URL", "https://api.bridgedataoutput.com/api/v2/OData")
	viper.SetDefault("BRIDGE_API_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
