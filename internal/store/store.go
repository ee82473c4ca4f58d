// Package store holds the typed data-access layer. Handlers depend on these
// interfaces and receive the MySQL implementations at startup, so tests can
// swap in in-memory fakes.
package store

import (
	"database/sql"

	"github.com/andratama/topupstore-golang/internal/models"
)

// Get* methods return (nil, nil) when the row does not exist; translating
// absence into a 404 is the handler's job.

type UserStore interface {
	GetByUsername(username string) (*models.User, error)
	GetByID(id int64) (*models.User, error)
	Create(user *models.User) error
}

type CategoryStore interface {
	List() ([]models.Category, error)
	GetByID(id int64) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	// First returns the category with the lowest id, used as the
	// bulk-import fallback. (nil, nil) when the table is empty.
	First() (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id int64) (bool, error)
}

type ProductStore interface {
	List(filter ProductFilter) ([]models.Product, int, error)
	GetByID(id int64) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int64) (bool, error)
	CountByCategory(categoryID int64) (int, error)
}

type BannerStore interface {
	List(activeOnly bool) ([]models.Banner, error)
	GetByID(id int64) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id int64) (bool, error)
}

// Stores bundles the MySQL implementations sharing one pool.
type Stores struct {
	Users      UserStore
	Categories CategoryStore
	Products   ProductStore
	Banners    BannerStore
}

func NewStores(db *sql.DB) *Stores {
	return &Stores{
		Users:      &MySQLUserStore{DB: db},
		Categories: &MySQLCategoryStore{DB: db},
		Products:   &MySQLProductStore{DB: db},
		Banners:    &MySQLBannerStore{DB: db},
	}
}
