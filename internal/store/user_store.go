package store

import (
	"database/sql"
	"errors"

	"github.com/andratama/topupstore-golang/internal/models"
)

type MySQLUserStore struct {
	DB *sql.DB
}

func (s *MySQLUserStore) GetByUsername(username string) (*models.User, error) {
	row := s.DB.QueryRow(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?",
		username,
	)
	return scanUser(row)
}

func (s *MySQLUserStore) GetByID(id int64) (*models.User, error) {
	row := s.DB.QueryRow(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?",
		id,
	)
	return scanUser(row)
}

func (s *MySQLUserStore) Create(user *models.User) error {
	result, err := s.DB.Exec(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		user.Username, user.Email, user.PasswordHash,
	)
	if err != nil {
		return err
	}
	user.ID, err = result.LastInsertId()
	return err
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
