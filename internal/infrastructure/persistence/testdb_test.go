package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqliteSchema mirrors migrations/ in SQLite syntax
var sqliteSchema = []string{
	`CREATE TABLE locations_local_bodies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		body_type TEXT NOT NULL,
		ward_count INTEGER NOT NULL DEFAULT 0,
		district_id TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price DECIMAL(12,2) NOT NULL DEFAULT 0,
		mrp DECIMAL(12,2) NOT NULL DEFAULT 0,
		category TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE seller_products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price DECIMAL(12,2) NOT NULL DEFAULT 0,
		mrp DECIMAL(12,2) NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		category TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		area_godown_id TEXT
	)`,
	`CREATE TABLE godowns (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		godown_type TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE godown_local_bodies (
		id TEXT PRIMARY KEY,
		godown_id TEXT NOT NULL,
		local_body_id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (godown_id, local_body_id)
	)`,
	`CREATE TABLE godown_wards (
		id TEXT PRIMARY KEY,
		godown_id TEXT NOT NULL,
		local_body_id TEXT NOT NULL,
		ward_number INTEGER NOT NULL,
		UNIQUE (local_body_id, ward_number)
	)`,
	`CREATE TABLE godown_stock (
		id TEXT PRIMARY KEY,
		godown_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		purchase_price DECIMAL(12,2) NOT NULL DEFAULT 0,
		batch_number TEXT,
		expiry_date DATETIME,
		purchase_number TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE stock_transfers (
		id TEXT PRIMARY KEY,
		from_godown_id TEXT NOT NULL,
		to_godown_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		batch_number TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		transfer_type TEXT NOT NULL DEFAULT 'transfer',
		created_by TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
}

// setupTestDB returns an in-memory SQLite database with the service schema.
// The pool is pinned to one connection so every query sees the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range sqliteSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
