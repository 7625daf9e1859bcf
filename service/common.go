package service

import (
	"context"
	"fmt"

	"blogapi/app/config"
	"blogapi/app/repositories"

	"go.uber.org/zap"
)

// Database paths - variables to allow testing with different paths
var (
	dbPath    = "data/badger"
	backupDir = "data/backups"
	store     = config.StoreBadger
)

// Configure points the database commands at the locations in cfg.
func Configure(cfg *config.Config) {
	dbPath = cfg.BadgerPath
	backupDir = cfg.BackupDir
	store = cfg.Store
}

// openStore opens the post repository selected by cfg. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.PostRepository, func() error, error) {
	switch cfg.Store {
	case config.StoreMongo:
		client, err := repositories.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		repo := repositories.NewMongoPostRepository(client.Database(cfg.MongoDatabase), cfg.MongoCollection)
		closeFn := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return client.Disconnect(ctx)
		}
		return repo, closeFn, nil
	case config.StoreBadger:
		db, err := repositories.OpenBadger(cfg.BadgerPath, cfg.BadgerInMemory, logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewBadgerPostRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
