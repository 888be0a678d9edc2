package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timeouts, poll interval, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Commerce CommerceConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// CommerceConfig points at the remote commerce backend that owns cart,
// pricing and order truth.
type CommerceConfig struct {
	BaseURL        string        `envconfig:"COMMERCE_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"COMMERCE_REQUEST_TIMEOUT" default:"10s"`
}

type CheckoutConfig struct {
	// Interval between payment status polls while an order awaits settlement.
	PollInterval time.Duration `envconfig:"CHECKOUT_POLL_INTERVAL" default:"3s"`
	// Idle sessions older than this are dropped by the registry sweep.
	SessionTTL time.Duration `envconfig:"CHECKOUT_SESSION_TTL" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Commerce: CommerceConfig{
			BaseURL:        "http://localhost:18080",
			RequestTimeout: 2 * time.Second,
		},
		Checkout: CheckoutConfig{
			PollInterval: 10 * time.Millisecond,
			SessionTTL:   time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
	}
}
