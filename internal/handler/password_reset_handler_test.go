package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext builds a *gin.Context with a JSON body.
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// Binding failures return 400 before the reset service is touched, so
// a zero handler is enough here.

func TestSendOTP_ValidationErrors(t *testing.T) {
	h := &PasswordResetHandler{}

	tests := []struct {
		name      string
		body      interface{}
		wantError string
	}{
		{"empty body", nil, "Email is required"},
		{"missing email", map[string]string{"otp": "482913"}, "Email is required"},
		{"empty email", map[string]string{"email": ""}, "Email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/admin-send-otp/", tt.body)
			h.SendOTP(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}

func TestVerifyOTP_ValidationErrors(t *testing.T) {
	h := &PasswordResetHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"missing otp", map[string]string{"email": "admin@x.com"}},
		{"missing email", map[string]string{"otp": "482913"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/admin-verify-otp/", tt.body)
			h.VerifyOTP(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, "Email and OTP are required", resp["error"])
		})
	}
}

func TestResetPassword_ValidationErrors(t *testing.T) {
	h := &PasswordResetHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"missing password", map[string]string{"email": "admin@x.com"}},
		{"missing email", map[string]string{"password": "NewPass1!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/admin-reset-password/", tt.body)
			h.ResetPassword(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, "Email and password are required", resp["error"])
		})
	}
}
