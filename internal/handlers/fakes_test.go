package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/andratama/topupstore-golang/internal/auth"
	"github.com/andratama/topupstore-golang/internal/config"
	"github.com/andratama/topupstore-golang/internal/currency"
	"github.com/andratama/topupstore-golang/internal/handlers"
	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/andratama/topupstore-golang/internal/routes"
	"github.com/andratama/topupstore-golang/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// In-memory store fakes. They mirror the MySQL implementations' contracts:
// (nil, nil) for absent rows, newest-first ordering, conjunctive filters.

type fakeUserStore struct {
	users  []models.User
	nextID int64
}

func (s *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id int64) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

type fakeCategoryStore struct {
	categories []models.Category
	nextID     int64
}

func (s *fakeCategoryStore) List() ([]models.Category, error) {
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *fakeCategoryStore) GetByID(id int64) (*models.Category, error) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryStore) GetByName(name string) (*models.Category, error) {
	for i := range s.categories {
		if strings.EqualFold(s.categories[i].Name, name) {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryStore) First() (*models.Category, error) {
	if len(s.categories) == 0 {
		return nil, nil
	}
	lowest := s.categories[0]
	for _, c := range s.categories {
		if c.ID < lowest.ID {
			lowest = c
		}
	}
	return &lowest, nil
}

func (s *fakeCategoryStore) Create(category *models.Category) error {
	s.nextID++
	category.ID = s.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	s.categories = append(s.categories, *category)
	return nil
}

func (s *fakeCategoryStore) Update(category *models.Category) error {
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = *category
			return nil
		}
	}
	return nil
}

func (s *fakeCategoryStore) Delete(id int64) (bool, error) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeProductStore struct {
	products []models.Product
	nextID   int64
}

func (s *fakeProductStore) List(filter store.ProductFilter) ([]models.Product, int, error) {
	filter = filter.Normalized()

	matched := []models.Product{}
	for i := len(s.products) - 1; i >= 0; i-- { // newest first
		p := s.products[i]
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		if filter.CategoryID > 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesSearch(p models.Product, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Box), term)
}

func (s *fakeProductStore) GetByID(id int64) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakeProductStore) Create(product *models.Product) error {
	s.nextID++
	product.ID = s.nextID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	s.products = append(s.products, *product)
	return nil
}

func (s *fakeProductStore) Update(product *models.Product) error {
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return nil
}

func (s *fakeProductStore) Delete(id int64) (bool, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProductStore) CountByCategory(categoryID int64) (int, error) {
	count := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type fakeBannerStore struct {
	banners []models.Banner
	nextID  int64
}

func (s *fakeBannerStore) List(activeOnly bool) ([]models.Banner, error) {
	out := []models.Banner{}
	for _, b := range s.banners {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID > out[j].ID // newest-created breaks ties
	})
	return out, nil
}

func (s *fakeBannerStore) GetByID(id int64) (*models.Banner, error) {
	for i := range s.banners {
		if s.banners[i].ID == id {
			b := s.banners[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *fakeBannerStore) Create(banner *models.Banner) error {
	s.nextID++
	banner.ID = s.nextID
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = banner.CreatedAt
	s.banners = append(s.banners, *banner)
	return nil
}

func (s *fakeBannerStore) Update(banner *models.Banner) error {
	for i := range s.banners {
		if s.banners[i].ID == banner.ID {
			s.banners[i] = *banner
			return nil
		}
	}
	return nil
}

func (s *fakeBannerStore) Delete(id int64) (bool, error) {
	for i := range s.banners {
		if s.banners[i].ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// testApp bundles the wired handlers and fakes for assertions.
type testApp struct {
	router     *gin.Engine
	handlers   *handlers.Handlers
	users      *fakeUserStore
	categories *fakeCategoryStore
	products   *fakeProductStore
	banners    *fakeBannerStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:        "5000",
			BaseURL:     "http://localhost:5000",
			FrontendURL: "http://localhost:5173",
		},
		JWT:      config.JWTConfig{Secret: "test-secret", TTLHours: 1},
		Upload:   config.UploadConfig{Dir: t.TempDir()},
		WhatsApp: config.WhatsAppConfig{Number: "6281234567890"},
		Currency: config.CurrencyConfig{MYRToIDRRate: 3400},
	}

	app := &testApp{
		users:      &fakeUserStore{},
		categories: &fakeCategoryStore{},
		products:   &fakeProductStore{},
		banners:    &fakeBannerStore{},
	}
	app.handlers = &handlers.Handlers{
		Users:      app.users,
		Categories: app.categories,
		Products:   app.products,
		Banners:    app.banners,
		Tokens:     auth.NewTokenManager(cfg.JWT.Secret, time.Hour),
		Converter:  currency.NewConverter(cfg.Currency.MYRToIDRRate),
		Config:     cfg,
		Log:        zap.NewNop().Sugar(),
	}
	app.router = routes.SetupRouter(app.handlers)
	return app
}

// seedAdmin registers an admin account and returns a valid session token.
func (a *testApp) seedAdmin(t *testing.T) string {
	t.Helper()
	var password models.Password
	if err := password.Set("admin123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Username: "admin", Email: "admin@example.com", PasswordHash: password.Hash}
	if err := a.users.Create(user); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	token, err := a.handlers.Tokens.Generate(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}
