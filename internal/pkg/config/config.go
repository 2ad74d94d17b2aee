package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Geocode GeocodeConfig
	Uploads UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=yourplaces"`
}

// GeocodeConfig configures the outbound geocoding client. The timeout is
// deliberately explicit rather than inherited from the transport defaults.
type GeocodeConfig struct {
	APIKey  string        `env:"GEOCODE_API_KEY"`
	BaseURL string        `env:"GEOCODE_BASE_URL, default=https://maps.googleapis.com/maps/api/geocode/json"`
	Timeout time.Duration `env:"GEOCODE_TIMEOUT,  default=5s"`
}

type UploadConfig struct {
	Dir string `env:"UPLOAD_DIR, default=uploads/images"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
