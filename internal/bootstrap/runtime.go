// Package bootstrap initializes runtime dependencies shared by the server
// binary and auxiliary commands.
package bootstrap

import (
	"fmt"
	"log"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates the database with a generated social mesh.
	// Development only; refused outside the development environment.
	SeedDemoData bool
	SeedUsers    int
	SeedPosts    int
}

// InitRuntime connects to the database and Redis and optionally seeds demo
// data. The Redis client may be nil if Redis is unreachable; callers degrade
// realtime features in that case.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if cfg.Env != "development" {
			return nil, nil, fmt.Errorf("demo seeding is only allowed in development (APP_ENV=%s)", cfg.Env)
		}
		numUsers := opts.SeedUsers
		if numUsers <= 0 {
			numUsers = 50
		}
		numPosts := opts.SeedPosts
		if numPosts <= 0 {
			numPosts = 400
		}
		if err := seed.Seed(db, seed.Options{
			NumUsers:    numUsers,
			NumPosts:    numPosts,
			ShouldClean: true,
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Println("demo data seeded")
	}

	return db, r, nil
}
