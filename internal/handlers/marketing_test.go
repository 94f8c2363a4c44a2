package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modalRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/marketing/modal", GetMarketingModal)
	return r
}

func TestMarketingModalSubscribedFlagWins(t *testing.T) {
	r := modalRouter()

	// Le drapeau client suffit : pas de modale, quelle que soit la route
	for _, path := range []string{"/", "/products", "/categories/shoes"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/marketing/modal?subscribed=true&path="+path, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["display"], path)
	}
}
