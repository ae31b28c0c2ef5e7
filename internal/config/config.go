package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For case-insensitive values

	"github.com/joho/godotenv" // For loading .env files
)

// Supported values for STORE_DRIVER
const (
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	StoreDriver    string // Persistence backend: redis, mysql, sqlite or memory
	DBUser         string // Database user
	DBPassword     string // Database password
	DBHost         string // Database host
	DBPort         string // Database port
	DBName         string // Database name
	SQLitePath     string // SQLite database file
	RedisAddr      string // Redis server address
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	KeyPrefix      string // Prefix prepended to every storage key
	StrictSnapshot bool   // Fail instead of resetting on an unreadable snapshot
	LogLevel       string // Logrus level name
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getenv("APP_PORT", "8080"),                           // Application port
		StoreDriver:    strings.ToLower(getenv("STORE_DRIVER", DriverRedis)), // Persistence backend
		DBUser:         os.Getenv("DB_USER"),                                 // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                             // Database password
		DBHost:         getenv("DB_HOST", "127.0.0.1"),                       // Database host
		DBPort:         getenv("DB_PORT", "3306"),                            // Database port
		DBName:         os.Getenv("DB_NAME"),                                 // Database name
		SQLitePath:     getenv("SQLITE_PATH", "portal.db"),                   // SQLite file
		RedisAddr:      getenv("REDIS_ADDR", "127.0.0.1:6379"),               // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                              // Redis password
		RedisDB:        redisDB,                                              // Redis database number
		KeyPrefix:      os.Getenv("KEY_PREFIX"),                              // Storage key prefix
		StrictSnapshot: os.Getenv("STRICT_SNAPSHOT") == "true",               // Strict snapshot parsing
		LogLevel:       getenv("LOG_LEVEL", "info"),                          // Log level
		IsProd:         os.Getenv("IS_PROD") == "true",                       // Is production environment
	}
}

// MySQLDSN builds the Data Source Name for the MySQL backend
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getenv returns the variable or fallback when it is unset or empty
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
