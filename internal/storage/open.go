package storage

import (
	"context"
	"fmt"

	"hbnb/internal/config"
	"hbnb/internal/database"

	"github.com/rs/zerolog"
)

// Open builds the backend selected by cfg.TypeStorage. The caller owns the
// returned handle and must Close it at shutdown.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Storage, error) {
	switch cfg.TypeStorage {
	case config.StorageDB:
		db, err := database.Connect(cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		s := NewDBStorage(db)
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		log.Info().Str("backend", "db").Msg("storage opened")
		return s, nil

	case config.StorageFile:
		s, err := NewFileStorage(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		log.Info().Str("backend", "file").Str("path", cfg.FilePath).Msg("storage opened")
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.TypeStorage)
}
