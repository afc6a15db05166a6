package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"farmtrack/config"
)

// Store is the opened backend. Exactly one of SQL and Mongo is set.
type Store struct {
	Driver string
	SQL    *gorm.DB
	Mongo  *mongo.Database

	client *mongo.Client
}

func Open(ctx context.Context, cfg config.AppConfig) (*Store, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		db, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: "sqlite", SQL: db}, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for postgres")
		}
		db, err := OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: "postgres", SQL: db}, nil
	case "mongo", "mongodb":
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGODB_URI is required for mongo")
		}
		client, db, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: "mongo", Mongo: db, client: client}, nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}

func (s *Store) Ping(ctx context.Context) error {
	if s.Mongo != nil {
		return s.client.Ping(ctx, nil)
	}
	sqlDB, err := s.SQL.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.client != nil {
		return s.client.Disconnect(ctx)
	}
	sqlDB, err := s.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
