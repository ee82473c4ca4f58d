package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/andratama/topupstore-golang/internal/models"
)

func TestCreateCategory(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)

	form := url.Values{}
	form.Set("name", "Mobile Legends")
	form.Set("description", "MLBB top up")
	w := app.do(t, authedForm(t, token, http.MethodPost, "/api/categories", form))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["name"] != "Mobile Legends" {
		t.Errorf("unexpected category: %v", data)
	}
	if data["slug"] != "mobile-legends" {
		t.Errorf("slug should derive from the name, got %v", data["slug"])
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)

	w := app.do(t, authedForm(t, token, http.MethodPost, "/api/categories", url.Values{}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateCategoryMerges(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)
	category := seedCategory(t, app, "Game Topup")
	category.Description = "Original description"
	category.ImageURL = "/uploads/topup.png"
	app.categories.Update(&category)

	form := url.Values{}
	form.Set("name", "Game Credits")
	path := fmt.Sprintf("/api/categories/%d", category.ID)
	w := app.do(t, authedForm(t, token, http.MethodPut, path, form))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	updated, _ := app.categories.GetByID(category.ID)
	if updated.Name != "Game Credits" || updated.Slug != "game-credits" {
		t.Errorf("name/slug not updated: %+v", updated)
	}
	if updated.Description != "Original description" || updated.ImageURL != "/uploads/topup.png" {
		t.Errorf("omitted fields must survive the update: %+v", updated)
	}
}

func TestDeleteCategoryBlockedWhileInUse(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)
	category := seedCategory(t, app, "Mobile Legends")
	app.products.Create(&models.Product{CategoryID: category.ID, Name: "86 Diamonds", Price: 1, IsActive: true})

	path := fmt.Sprintf("/api/categories/%d", category.ID)
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := app.do(t, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete must be blocked while referenced, got %d", w.Code)
	}
	if msg := decodeBody(t, w)["message"].(string); !strings.Contains(msg, "in use") {
		t.Errorf("unexpected message: %q", msg)
	}

	// Once the product is gone the category can be removed.
	app.products.Delete(app.products.products[0].ID)
	req = httptest.NewRequest(http.MethodDelete, path, nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	if w := app.do(t, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after products removed, got %d", w.Code)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, httptest.NewRequest(http.MethodGet, "/api/categories/7", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
