package handlers

import (
	"github.com/andratama/topupstore-golang/internal/auth"
	"github.com/andratama/topupstore-golang/internal/config"
	"github.com/andratama/topupstore-golang/internal/currency"
	"github.com/andratama/topupstore-golang/internal/store"
	"go.uber.org/zap"
)

// Handlers holds all dependencies for the HTTP controllers. Everything is
// injected at startup; there is no package-level state.
type Handlers struct {
	Users      store.UserStore
	Categories store.CategoryStore
	Products   store.ProductStore
	Banners    store.BannerStore
	Tokens     *auth.TokenManager
	Converter  currency.Converter
	Config     *config.Config
	Log        *zap.SugaredLogger
}
