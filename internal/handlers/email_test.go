package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gromart_back_end/internal/handlers"
	"gromart_back_end/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	err      error
	subjects []string
	bodies   []string
}

func (f *fakeSender) Send(_ context.Context, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, html)
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(sender *fakeSender) *gin.Engine {
	r := gin.New()
	routes.RegisterRoutes(r, handlers.NewEmailHandler(sender))
	return r
}

const orderBody = `{
	"customer": {"name": "Priya", "phone": "9876543210", "address": "12 MG Road"},
	"items": [{"name": "Rice 5kg", "quantity": 1, "price": 250}],
	"totalAmount": 250,
	"paymentMode": "cod",
	"orderId": "GRM1700000000000"
}`

func TestHealth(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&fakeSender{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Backend is working!"}`, rec.Body.String())
}

func TestSendOrderEmail_Success(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	r := newTestRouter(sender)

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(orderBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	require.Len(t, sender.subjects, 1)
	assert.Equal(t, "New Order - GRM1700000000000", sender.subjects[0])
	assert.Contains(t, sender.bodies[0], "<li>Rice 5kg - Qty: 1 - ₹250</li>")
	assert.Contains(t, sender.bodies[0], "<strong>Payment Mode:</strong> cod")
}

func TestSendOrderEmail_ProviderFailure(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("provider unavailable")}
	r := newTestRouter(sender)

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(orderBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "provider unavailable", resp.Error)
}

func TestSendOrderEmail_SparsePayloadStillSends(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	r := newTestRouter(sender)

	req := httptest.NewRequest(http.MethodPost, "/api/send-email",
		strings.NewReader(`{"orderId": "GRM1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sender.bodies, 1)
	assert.Contains(t, sender.bodies[0], "<strong>Customer Name:</strong> N/A")
	assert.Contains(t, sender.bodies[0], "<li>No products found</li>")
}

func TestSendOrderEmail_MalformedJSON(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	r := newTestRouter(sender)

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.subjects, "nothing is sent for a bad payload")
}
