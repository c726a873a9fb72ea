// Package upi builds UPI payment deep links and renders them as QR codes for
// clients that cannot follow a upi:// link. Payment completion is never
// observed; the link only prefills the payment app.
package upi

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// Payee identifies the receiving UPI account.
type Payee struct {
	VPA  string
	Name string
}

// Link builds the deep link for amount rupees against orderID. Spaces are
// encoded as %20, not '+', because UPI apps reject the form encoding.
func Link(p Payee, amount float64, orderID string) string {
	note := escape("Order " + orderID)
	am := strconv.FormatFloat(amount, 'f', -1, 64)
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		escape(p.VPA), escape(p.Name), am, note)
}

// QRPNG renders the link as a PNG for desktop checkouts.
func QRPNG(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, qrSize)
}

// QRDataURI renders the link as a base64 data URI ready for an <img> tag.
func QRDataURI(link string) (string, error) {
	png, err := QRPNG(link)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
