package upi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayee = Payee{VPA: "ks.sankar@ybl", Name: "GROMART"}

func TestLink_Format(t *testing.T) {
	t.Parallel()

	link := Link(testPayee, 250, "GRM1700000000000")
	assert.Equal(t,
		"upi://pay?pa=ks.sankar%40ybl&pn=GROMART&am=250&cu=INR&tn=Order%20GRM1700000000000",
		link)
}

func TestLink_SpacesUsePercentTwenty(t *testing.T) {
	t.Parallel()

	link := Link(Payee{VPA: "shop@upi", Name: "Corner Shop"}, 100, "GRM1")
	assert.Contains(t, link, "pn=Corner%20Shop")
	assert.Contains(t, link, "tn=Order%20GRM1")
	assert.NotContains(t, link, "+", "UPI apps reject form encoding")
}

func TestLink_AmountFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole rupees", amount: 250, want: "am=250&"},
		{name: "fractional after discount", amount: 237.5, want: "am=237.5&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Link(testPayee, tt.amount, "GRM1"), tt.want)
		})
	}
}

func TestQRPNG_EncodesTheLink(t *testing.T) {
	t.Parallel()

	link := Link(testPayee, 250, "GRM1700000000000")
	png, err := QRPNG(link)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestQRDataURI(t *testing.T) {
	t.Parallel()

	uri, err := QRDataURI(Link(testPayee, 100, "GRM1"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
