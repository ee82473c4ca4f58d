package store

import (
	"database/sql"
	"errors"

	"github.com/andratama/topupstore-golang/internal/models"
)

const bannerColumns = "id, title, image_url, link, is_active, display_order, created_at, updated_at"

type MySQLBannerStore struct {
	DB *sql.DB
}

func (s *MySQLBannerStore) List(activeOnly bool) ([]models.Banner, error) {
	query := "SELECT " + bannerColumns + " FROM banners"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY display_order ASC, created_at DESC"

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *banner)
	}
	return banners, rows.Err()
}

func (s *MySQLBannerStore) GetByID(id int64) (*models.Banner, error) {
	row := s.DB.QueryRow("SELECT "+bannerColumns+" FROM banners WHERE id = ?", id)
	banner, err := scanBanner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return banner, err
}

func (s *MySQLBannerStore) Create(banner *models.Banner) error {
	result, err := s.DB.Exec(
		"INSERT INTO banners (title, image_url, link, is_active, display_order) VALUES (?, ?, ?, ?, ?)",
		banner.Title, banner.ImageURL, banner.Link, banner.IsActive, banner.DisplayOrder,
	)
	if err != nil {
		return err
	}
	banner.ID, err = result.LastInsertId()
	return err
}

func (s *MySQLBannerStore) Update(banner *models.Banner) error {
	_, err := s.DB.Exec(
		"UPDATE banners SET title = ?, image_url = ?, link = ?, is_active = ?, display_order = ? WHERE id = ?",
		banner.Title, banner.ImageURL, banner.Link, banner.IsActive, banner.DisplayOrder, banner.ID,
	)
	return err
}

func (s *MySQLBannerStore) Delete(id int64) (bool, error) {
	result, err := s.DB.Exec("DELETE FROM banners WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func scanBanner(row rowScanner) (*models.Banner, error) {
	var b models.Banner
	err := row.Scan(&b.ID, &b.Title, &b.ImageURL, &b.Link, &b.IsActive, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
