package handlers

import (
	"net/http"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/andratama/topupstore-golang/internal/currency"
	"github.com/andratama/topupstore-golang/internal/whatsapp"
	"github.com/gin-gonic/gin"
)

// CurrencyCookie persists the visitor's display preference. It is readable
// by the frontend, so not HTTP-only.
const CurrencyCookie = "currency"

const currencyCookieMaxAge = 365 * 24 * 60 * 60

type SetCurrencyInput struct {
	Currency string `json:"currency" binding:"required"`
}

// GetCurrency handles GET /api/currency: returns the active display
// currency, detecting and persisting one on first visit.
func (h *Handlers) GetCurrency(c *gin.Context) {
	cur := h.activeCurrency(c)
	respondOK(c, gin.H{
		"currency": cur,
		"symbol":   currency.Symbol(cur),
		"name":     currency.Name(cur),
	})
}

// SetCurrency handles PUT /api/currency. A pure display toggle; no stored
// amount changes.
func (h *Handlers) SetCurrency(c *gin.Context) {
	var input SetCurrencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	cur, ok := currency.Parse(input.Currency)
	if !ok {
		h.respondError(c, apperror.BadRequest("Unsupported currency"))
		return
	}

	h.setCurrencyCookie(c, cur)
	respondOK(c, gin.H{"currency": cur, "symbol": currency.Symbol(cur)})
}

// CheckoutLink handles GET /api/checkout/link?product_id&name: builds the
// WhatsApp deep link for the selected product, pricing it in the caller's
// active currency.
func (h *Handlers) CheckoutLink(c *gin.Context) {
	customerName := c.Query("name")
	if customerName == "" {
		h.respondError(c, apperror.BadRequest("Customer name is required"))
		return
	}

	id, err := parseQueryID(c, "product_id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		h.respondError(c, apperror.NotFound("Product not found"))
		return
	}

	formattedPrice := h.Converter.Format(product.Price, h.activeCurrency(c))
	link := whatsapp.CheckoutURL(h.Config.WhatsApp.Number, customerName, product.Name, formattedPrice)
	respondOK(c, gin.H{"url": link})
}

// activeCurrency resolves the preference: valid cookie first, then
// Accept-Language detection, which is persisted for future visits.
func (h *Handlers) activeCurrency(c *gin.Context) currency.Currency {
	if raw, err := c.Cookie(CurrencyCookie); err == nil {
		if cur, ok := currency.Parse(raw); ok {
			return cur
		}
	}
	cur := currency.Detect(c.GetHeader("Accept-Language"))
	h.setCurrencyCookie(c, cur)
	return cur
}

func (h *Handlers) setCurrencyCookie(c *gin.Context, cur currency.Currency) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CurrencyCookie, string(cur), currencyCookieMaxAge, "/", "", false, false)
}
