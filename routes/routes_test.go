package routes

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-backend/controllers"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(
		controllers.NewRoomController(nil),
		controllers.NewBookingController(nil),
		controllers.NewPackageController(nil),
		controllers.NewServiceController(nil),
		controllers.NewFoodOrderController(nil),
		controllers.NewEmployeeController(nil),
		controllers.NewExpenseController(nil),
		controllers.NewAuthController(nil),
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestLogsExactlyOnce(t *testing.T) {
	r := testRouter()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, strings.Count(buf.String(), "/health"))
}

func TestParseCorsOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, []string{"*"}, parseCorsOrigins())

	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, parseCorsOrigins())
}
