package sceneindex

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneHandler_MissingID(t *testing.T) {
	// Mock
	handler := SceneHandler{}

	// Tested code
	response := httptest.NewRecorder()
	handler.ServeHTTP(response, httptest.NewRequest("GET", "/localindex/scenes/", strings.NewReader("")))

	// Asserts
	assert.Equal(t, http.StatusNotFound, response.Code)
}
