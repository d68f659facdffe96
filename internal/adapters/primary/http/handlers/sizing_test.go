package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipe-sizing-service/internal/adapters/primary/http/dto"
	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
	"pipe-sizing-service/internal/core/services"
	"pipe-sizing-service/internal/testutil"
)

const apiPrefix = "/api/v1/pipe-sizing"

func setupRouter() (*Handler, *testutil.MockFieldRenderer, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	renderer := new(testutil.MockFieldRenderer)

	sizingSvc := services.NewSizingService()
	fieldSvc := services.NewFieldService(domain.DefaultFieldDomain(), ports.RenderOptions{}, renderer, nil)

	h := New(sizingSvc, fieldSvc)
	r := gin.New()
	h.RegisterPage(r)
	api := r.Group(apiPrefix)
	h.RegisterRoutes(api)

	return h, renderer, r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateDiameter(t *testing.T) {
	_, _, r := setupRouter()

	w := postJSON(r, apiPrefix+"/diameter", map[string]interface{}{
		"flow_rate": 1.0,
		"velocity":  1.0,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DiameterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InEpsilon(t, 1.1284, resp.Diameter, 1e-4)
	assert.Equal(t, 1.13, resp.DiameterRounded)
	assert.Equal(t, "m", resp.Unit)
	assert.Equal(t, "The recommended pipe diameter is: **1.13 meters**", resp.Message)
}

func TestCalculateDiameter_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "zero flow rate", body: map[string]interface{}{"flow_rate": 0.0, "velocity": 1.0}},
		{name: "zero velocity", body: map[string]interface{}{"flow_rate": 1.0, "velocity": 0.0}},
		{name: "missing fields", body: map[string]interface{}{}},
		{name: "negative velocity", body: map[string]interface{}{"flow_rate": 1.0, "velocity": -2.0}},
	}

	_, _, r := setupRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, apiPrefix+"/diameter", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			assert.Contains(t, resp["error"], domain.ErrInvalidInput.Error())
		})
	}
}

func TestCalculateDiameter_MalformedBody(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("POST", apiPrefix+"/diameter", bytes.NewReader([]byte("{flow_rate")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDiameter(t *testing.T) {
	_, _, r := setupRouter()

	req, _ := http.NewRequest("GET", apiPrefix+"/diameter?flow_rate=0.5&velocity=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DiameterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InEpsilon(t, 0.5642, resp.Diameter, 1e-4)
	assert.Equal(t, 0.56, resp.DiameterRounded)
}

func TestGetDiameter_BadQuery(t *testing.T) {
	_, _, r := setupRouter()

	for _, query := range []string{
		"",
		"?flow_rate=abc&velocity=1",
		"?flow_rate=1",
		"?flow_rate=1&velocity=0",
	} {
		req, _ := http.NewRequest("GET", apiPrefix+"/diameter"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
