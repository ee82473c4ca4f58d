package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/andratama/topupstore-golang/internal/models"
)

const productColumns = "id, category_id, name, price, box, image_url, description, is_active, created_at, updated_at"

type MySQLProductStore struct {
	DB *sql.DB
}

// List runs the count query and the page query over the identical predicate
// so total and data can never disagree within one request.
func (s *MySQLProductStore) List(filter ProductFilter) ([]models.Product, int, error) {
	filter = filter.Normalized()
	whereSQL, args := filter.WhereClause()

	var total int
	countQuery := "SELECT COUNT(*) FROM products" + whereSQL
	if err := s.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT ")
	queryBuilder.WriteString(productColumns)
	queryBuilder.WriteString(" FROM products")
	queryBuilder.WriteString(whereSQL)
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.Offset())

	rows, err := s.DB.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *product)
	}
	return products, total, rows.Err()
}

func (s *MySQLProductStore) GetByID(id int64) (*models.Product, error) {
	row := s.DB.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return product, err
}

func (s *MySQLProductStore) Create(product *models.Product) error {
	result, err := s.DB.Exec(
		"INSERT INTO products (category_id, name, price, box, image_url, description, is_active) VALUES (?, ?, ?, ?, ?, ?, ?)",
		product.CategoryID, product.Name, product.Price, product.Box,
		product.ImageURL, product.Description, product.IsActive,
	)
	if err != nil {
		return err
	}
	product.ID, err = result.LastInsertId()
	return err
}

func (s *MySQLProductStore) Update(product *models.Product) error {
	_, err := s.DB.Exec(
		"UPDATE products SET category_id = ?, name = ?, price = ?, box = ?, image_url = ?, description = ?, is_active = ? WHERE id = ?",
		product.CategoryID, product.Name, product.Price, product.Box,
		product.ImageURL, product.Description, product.IsActive, product.ID,
	)
	return err
}

func (s *MySQLProductStore) Delete(id int64) (bool, error) {
	result, err := s.DB.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (s *MySQLProductStore) CountByCategory(categoryID int64) (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM products WHERE category_id = ?", categoryID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var description sql.NullString
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Box,
		&p.ImageURL, &description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	return &p, nil
}
