package database

import (
	"database/sql"

	"github.com/andratama/topupstore-golang/internal/config"
	"github.com/andratama/topupstore-golang/internal/models"
)

// Schema statements are idempotent so the migrate command can be re-run safely.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		slug VARCHAR(120) NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		category_id INT NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(14,2) NOT NULL,
		box VARCHAR(100) NOT NULL DEFAULT '',
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_products_category (category_id),
		INDEX idx_products_created (created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		link VARCHAR(255),
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the admin account and a starter category when absent.
func Seed(db *sql.DB, admin config.AdminConfig) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", admin.Username).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		var password models.Password
		if err := password.Set(admin.Password); err != nil {
			return err
		}
		_, err := db.Exec(
			"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
			admin.Username, admin.Email, password.Hash,
		)
		if err != nil {
			return err
		}
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM categories WHERE name = ?", "Game Topup").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err := db.Exec(
			"INSERT INTO categories (name, slug, image_url, description) VALUES (?, ?, ?, ?)",
			"Game Topup", "game-topup", "/uploads/topup.png", "Top up",
		)
		if err != nil {
			return err
		}
	}
	return nil
}
