package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel      string
	DatabasePath  string
	TokenListPath string
	MaxRetries    int
	RetryDelay    time.Duration
	HTTP          HTTPConfig
	Kafka         KafkaConfig
	Ethereum      ServiceConfig
	Blockonomics  ServiceConfig
	Etherscan     ServiceConfig
	FourByte      ServiceConfig
	CoinCap       ServiceConfig
}

// HTTPConfig holds HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration
}

// KafkaConfig holds Kafka configuration. An empty BrokerAddress disables the
// Kafka emitter.
type KafkaConfig struct {
	BrokerAddress string
	Topic         string
	BatchSize     int
	BatchTimeout  time.Duration
}

// ServiceConfig holds configuration for one upstream API
type ServiceConfig struct {
	BaseURL   string
	ApiKey    string
	RateLimit float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, variables may be set externally.
	_ = godotenv.Load()

	config := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		DatabasePath:  getEnv("DB_PATH", "wallet-watch.db"),
		TokenListPath: getEnv("TOKEN_LIST_PATH", "assets.json"),
		MaxRetries:    getEnvAsInt("MAX_RETRIES", 1),
		RetryDelay:    time.Duration(getEnvAsInt("RETRY_DELAY", 1)) * time.Second,
		HTTP: HTTPConfig{
			Timeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT", 30)) * time.Second,
		},
		Kafka: KafkaConfig{
			BrokerAddress: getEnv("KAFKA_BROKER_ADDRESS", ""),
			Topic:         getEnv("KAFKA_TOPIC", "wallet-watch-transactions"),
			BatchSize:     getEnvAsInt("KAFKA_BATCH_SIZE", 10),
			BatchTimeout:  time.Duration(getEnvAsInt("KAFKA_BATCH_TIMEOUT", 1)) * time.Second,
		},
		Ethereum: ServiceConfig{
			BaseURL: getEnv("ETHEREUM_RPC_ENDPOINT", "https://mainnet.infura.io/v3/1f533c3627fa490cb739d9176e4eb2f5"),
		},
		Blockonomics: ServiceConfig{
			BaseURL:   getEnv("BLOCKONOMICS_URL", "https://www.blockonomics.co/api"),
			ApiKey:    getEnv("BLOCKONOMICS_API_KEY", "sgNWOodbscezo53zHr8tpuHEgm8Ll4xL9B7jqgLAJU0"),
			RateLimit: getEnvAsFloat("BLOCKONOMICS_RATE_LIMIT", 2),
		},
		Etherscan: ServiceConfig{
			BaseURL:   getEnv("ETHERSCAN_URL", "https://api.etherscan.io"),
			ApiKey:    getEnv("ETHERSCAN_API_KEY", "NEUACC949RWW9SFV4WXUU6E85MNGVPEQJB"),
			RateLimit: getEnvAsFloat("ETHERSCAN_RATE_LIMIT", 4),
		},
		FourByte: ServiceConfig{
			BaseURL:   getEnv("FOURBYTE_URL", "https://www.4byte.directory"),
			RateLimit: getEnvAsFloat("FOURBYTE_RATE_LIMIT", 4),
		},
		CoinCap: ServiceConfig{
			BaseURL:   getEnv("COINCAP_URL", "https://api.coincap.io/v2"),
			ApiKey:    getEnv("COINCAP_API_KEY", ""),
			RateLimit: getEnvAsFloat("COINCAP_RATE_LIMIT", 4),
		},
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float64 or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
