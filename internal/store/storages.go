// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// Storages groups the four record maps of the application.
type Storages struct {
	Users       Map[models.User]
	UserInfos   Map[models.UserInfo]
	Workouts    Map[models.Workout]
	FoodIntakes Map[models.FoodIntake]

	db *DB
}

// NewStorages builds the record maps described by cfg. With an empty DSN all
// maps live in memory; otherwise the database is opened, migrated and every
// map is backed by its table.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, records are kept in memory")
		return NewMemoryStorages(), nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	storages, err := NewSQLStorages(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return storages, nil
}

// NewMemoryStorages returns storages whose maps are all in memory.
func NewMemoryStorages() *Storages {
	return &Storages{
		Users:       NewMemoryMap[models.User](),
		UserInfos:   NewMemoryMap[models.UserInfo](),
		Workouts:    NewMemoryMap[models.Workout](),
		FoodIntakes: NewMemoryMap[models.FoodIntake](),
	}
}

// NewSQLStorages returns storages whose maps are backed by the tables of db.
func NewSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	users, err := NewSQLMap[models.User](db, TableUsers, log)
	if err != nil {
		return nil, err
	}
	userInfos, err := NewSQLMap[models.UserInfo](db, TableUserInfos, log)
	if err != nil {
		return nil, err
	}
	workouts, err := NewSQLMap[models.Workout](db, TableWorkouts, log)
	if err != nil {
		return nil, err
	}
	foodIntakes, err := NewSQLMap[models.FoodIntake](db, TableFoodIntakes, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users:       users,
		UserInfos:   userInfos,
		Workouts:    workouts,
		FoodIntakes: foodIntakes,
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
