package store

import (
	"database/sql"
	"errors"

	"github.com/andratama/topupstore-golang/internal/models"
)

const categoryColumns = "id, name, slug, image_url, description, created_at, updated_at"

type MySQLCategoryStore struct {
	DB *sql.DB
}

func (s *MySQLCategoryStore) List() ([]models.Category, error) {
	rows, err := s.DB.Query("SELECT " + categoryColumns + " FROM categories ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (s *MySQLCategoryStore) GetByID(id int64) (*models.Category, error) {
	row := s.DB.QueryRow("SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	return nilOnNoRows(scanCategory(row))
}

// GetByName matches case-insensitively; MySQL's default collation already
// compares that way, LOWER() keeps it explicit.
func (s *MySQLCategoryStore) GetByName(name string) (*models.Category, error) {
	row := s.DB.QueryRow("SELECT "+categoryColumns+" FROM categories WHERE LOWER(name) = LOWER(?) LIMIT 1", name)
	return nilOnNoRows(scanCategory(row))
}

func (s *MySQLCategoryStore) First() (*models.Category, error) {
	row := s.DB.QueryRow("SELECT " + categoryColumns + " FROM categories ORDER BY id ASC LIMIT 1")
	return nilOnNoRows(scanCategory(row))
}

func (s *MySQLCategoryStore) Create(category *models.Category) error {
	result, err := s.DB.Exec(
		"INSERT INTO categories (name, slug, image_url, description) VALUES (?, ?, ?, ?)",
		category.Name, category.Slug, category.ImageURL, category.Description,
	)
	if err != nil {
		return err
	}
	category.ID, err = result.LastInsertId()
	return err
}

func (s *MySQLCategoryStore) Update(category *models.Category) error {
	_, err := s.DB.Exec(
		"UPDATE categories SET name = ?, slug = ?, image_url = ?, description = ? WHERE id = ?",
		category.Name, category.Slug, category.ImageURL, category.Description, category.ID,
	)
	return err
}

func (s *MySQLCategoryStore) Delete(id int64) (bool, error) {
	result, err := s.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var c models.Category
	var description sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL, &description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	return &c, nil
}

func nilOnNoRows(category *models.Category, err error) (*models.Category, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return category, err
}
