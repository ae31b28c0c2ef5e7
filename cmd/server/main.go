package main

import (
	"context" // context package is needed for backend calls
	"time"    // Ping timeout

	"recycling_portal/internal/api"        // Custom package for API handlers
	"recycling_portal/internal/config"     // Custom package for configuration
	"recycling_portal/internal/db"         // Custom package for SQL backends
	"recycling_portal/internal/middleware" // Custom package for middleware
	"recycling_portal/internal/portal"     // Application state controller
	"recycling_portal/internal/session"    // Current-user seam
	"recycling_portal/internal/store"      // Persistence service

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	// Setup the key-value persistence service
	kv := openStore(cfg)
	snapshots := store.NewSnapshotStore(kv,
		store.WithKey(cfg.KeyPrefix+store.DefaultSnapshotKey),
		store.WithStrict(cfg.StrictSnapshot),
	)
	users := session.NewKVCurrentUser(kv, cfg.KeyPrefix+store.DefaultCurrentUserKey)

	// Load the dataset, seeding it on first run
	ctrl, err := portal.New(context.Background(), snapshots, users)
	if err != nil {
		logrus.Fatalf("failed to load dataset: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, ctrl) // Admin and user surfaces

	logrus.WithFields(logrus.Fields{
		"port":   cfg.AppPort,
		"driver": cfg.StoreDriver,
	}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger configures the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openStore connects to the backend selected by STORE_DRIVER
func openStore(cfg *config.Config) store.KV {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		// Setup Redis client
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		return store.NewRedisKV(redisClient)
	case config.DriverMySQL, config.DriverSQLite:
		gdb, err := db.Open(cfg)
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		// SQLite files are created on demand, so make sure the table exists
		if cfg.StoreDriver == config.DriverSQLite {
			if err := db.Migrate(gdb); err != nil {
				logrus.Fatalf("migration failed: %v", err)
			}
		}
		return store.NewGormKV(gdb)
	case config.DriverMemory:
		logrus.Warn("Using in-memory store, data will not survive a restart")
		return store.NewMemoryKV()
	default:
		logrus.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil
	}
}
