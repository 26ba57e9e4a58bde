package main

import (
	"context"
	"os"

	"github.com/demoapps/go-services/internal/config"
	"github.com/demoapps/go-services/internal/dictionary"
	"github.com/demoapps/go-services/internal/server"
	"github.com/demoapps/go-services/pkg/logger"
)

// usage: dictionary [serve|seed|init]
func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "serve":
		server.Main(server.Dictionary.DefaultDatabase, server.Dictionary)
	case "seed", "init":
		if err := runTask(cmd); err != nil {
			logger.Fatalf("%s failed: %v", cmd, err)
		}
	default:
		logger.Fatalf("unknown command %q (want serve, seed or init)", cmd)
	}
}

func runTask(cmd string) error {
	cfg, err := config.LoadConfig(server.Dictionary.DefaultDatabase)
	if err != nil {
		return err
	}
	// tasks only make sense against a real database
	cfg.MongoDB.Required = true
	if cfg.MongoDB.URI == "" {
		cfg.MongoDB.URI = "mongodb://localhost:27017"
	}

	ctx := context.Background()
	d, cleanup, err := server.Bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer logger.Sync()

	if cmd == "init" {
		return dictionary.InitCollection(ctx, d.DB)
	}
	if err := dictionary.EnsureIndexes(ctx, d.DB.Collection(dictionary.Collection)); err != nil {
		return err
	}
	_, err = dictionary.Seed(ctx, dictionary.NewService(dictionary.NewMongoRepository(d.DB)))
	return err
}
