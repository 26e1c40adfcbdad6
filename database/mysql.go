package database

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func CreateTables(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id          VARCHAR(36) PRIMARY KEY,
			name        VARCHAR(100) NOT NULL,
			email       VARCHAR(255) NOT NULL,
			password    VARCHAR(255) NOT NULL,
			birthday    VARCHAR(10) NOT NULL DEFAULT '',
			profile_pic VARCHAR(255) NOT NULL DEFAULT '',
			bio         VARCHAR(500) NOT NULL DEFAULT '',
			location    VARCHAR(100) NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS friend_requests (
			id          VARCHAR(36) PRIMARY KEY,
			from_id     VARCHAR(36) NOT NULL,
			to_id       VARCHAR(36) NOT NULL,
			status      ENUM('pending', 'accepted', 'rejected') DEFAULT 'pending',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_to_status (to_id, status),
			INDEX idx_from_status (from_id, status)
		)`,
		`CREATE TABLE IF NOT EXISTS friend_links (
			id          VARCHAR(36) PRIMARY KEY,
			user_id     VARCHAR(36) NOT NULL,
			friend_id   VARCHAR(36) NOT NULL,
			status      ENUM('pending', 'accepted') DEFAULT 'pending',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_link (user_id, friend_id),
			INDEX idx_friend (friend_id)
		)`,
		`CREATE TABLE IF NOT EXISTS invites (
			id          VARCHAR(36) PRIMARY KEY,
			from_addr   VARCHAR(255) NOT NULL,
			to_addr     VARCHAR(255) NOT NULL,
			date        VARCHAR(20) NOT NULL DEFAULT '',
			time        VARCHAR(20) NOT NULL DEFAULT '',
			place       VARCHAR(255) NOT NULL DEFAULT '',
			message     VARCHAR(1000) NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}

	return nil
}
