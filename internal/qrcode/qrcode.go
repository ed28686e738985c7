package qrcode

import (
	"fmt"
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

// Generate creates a QR code PNG image for the given URL.
func Generate(link string) ([]byte, error) {
	return qr.Encode(link, qr.Medium, 256)
}

// JoinURL is the link a phone follows to take a seat at a table.
func JoinURL(host, tableID string, seat int) string {
	q := url.Values{}
	q.Set("table", tableID)
	q.Set("seat", fmt.Sprint(seat))
	return "http://" + host + "/seat.html?" + q.Encode()
}
