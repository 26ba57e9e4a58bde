// Package server wires configuration, stores and app modules into one gin
// engine and runs it until the process is signalled.
package server

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/demoapps/go-services/internal/config"
	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/internal/storage"
	"github.com/demoapps/go-services/internal/tokens"
	"github.com/demoapps/go-services/pkg/logger"
)

const (
	connectAttempts = 5
	connectBackoff  = time.Second
)

// Deps are the shared clients handed to every module.
type Deps struct {
	Config *config.Config
	Mongo  *mongo.Client
	// DB is nil when the apps run on in-memory repositories.
	DB      *mongo.Database
	Redis   *redis.Client
	Objects storage.ObjectStore
	Tokens  *tokens.Issuer
}

// MemoryDeps returns Deps without any external client.
func MemoryDeps(cfg *config.Config) *Deps {
	return &Deps{Config: cfg, Tokens: tokens.NewIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)}
}

// Bootstrap sets up logging and connects the configured backends. Optional
// backends that fail are logged and left nil. The returned cleanup closes
// whatever was opened.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Deps, func(), error) {
	logger.Init(cfg.Log.Level)
	logger.SetEncoding(cfg.Log.Format)
	logger.Infof("config loaded: env=%s mongo=%v redis=%v minio=%v",
		cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Addr() != "", cfg.MinIO.Endpoint != "")

	d := MemoryDeps(cfg)

	if addr := cfg.Redis.Addr(); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
			_ = client.Close()
		} else {
			logger.Infof("connected to Redis: %s", addr)
			d.Redis = client
		}
	}

	if cfg.MongoDB.URI != "" {
		// a required store fails fast; an optional one is retried before falling back
		attempts := connectAttempts
		if cfg.MongoDB.Required {
			attempts = 1
		}
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, attempts, connectBackoff)
		switch {
		case err == nil:
			logger.Infof("connected to MongoDB, database %s", cfg.MongoDB.Database)
			d.Mongo = client
			d.DB = client.Database(cfg.MongoDB.Database)
		case cfg.MongoDB.Required:
			d.close()
			return nil, nil, err
		default:
			logger.Warnf("MongoDB unavailable, using in-memory repositories: %v", err)
		}
	} else {
		logger.Infof("MONGODB_URI not set, using in-memory repositories")
	}

	if cfg.MinIO.Endpoint != "" {
		objects, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("MinIO unavailable, exports disabled: %v", err)
		} else {
			d.Objects = objects
		}
	}

	return d, d.close, nil
}

func (d *Deps) close() {
	if d.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.Mongo.Disconnect(ctx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			logger.Warnf("redis close: %v", err)
		}
	}
}
