// Package whatsapp builds the checkout deep link. There is no payment flow;
// ordering hands off to a pre-filled chat with the store's admin number.
package whatsapp

import (
	"fmt"
	"net/url"
)

const messageTemplate = `Halo, saya %s

Saya ingin membeli produk:
📦 %s
💰 %s

Mohon informasi lebih lanjut untuk melakukan pemesanan. Terima kasih!`

// CheckoutURL returns a wa.me link that opens a chat with the admin number,
// pre-filled with the customer's name and the selected product.
func CheckoutURL(phoneNumber, customerName, productName, formattedPrice string) string {
	message := fmt.Sprintf(messageTemplate, customerName, productName, formattedPrice)
	return "https://wa.me/" + phoneNumber + "?text=" + url.QueryEscape(message)
}
