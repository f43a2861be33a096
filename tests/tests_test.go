package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuestion_ByLevel(t *testing.T) {
	for level := 1; level <= 3; level++ {
		status, body := doJSON(t, http.MethodGet, fmt.Sprintf("/api/pregunta?nivel=%d", level), nil)
		require.Equal(t, fiber.StatusOK, status)

		assert.Equal(t, float64(level), body["level"])
		assert.NotEmpty(t, body["id"])
		assert.NotEmpty(t, body["text"])
		assert.Len(t, body["options"], 4)
	}
}

func TestGetQuestion_DefaultsToLevelTwo(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/api/pregunta", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), body["level"])
}

func TestGetQuestion_FallsBackToClosestLevel(t *testing.T) {
	// Nivel 9 no existe; la más cercana es de nivel 3.
	status, body := doJSON(t, http.MethodGet, "/api/pregunta?nivel=9", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), body["level"])
}

func TestSubmitResult_Breakdown(t *testing.T) {
	sid := mustCreateStudent(t, "Hugo Test", "2do")

	status, body := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
		"student_id":       sid,
		"correct":          4,
		"final_level":      3,
		"duration_seconds": 180,
	})

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(64), body["awarded"])

	breakdown := body["breakdown"].(map[string]interface{})
	assert.Equal(t, float64(10), breakdown["base"])
	assert.Equal(t, float64(32), breakdown["accuracy"])
	assert.Equal(t, float64(7), breakdown["speed"])
	assert.Equal(t, float64(15), breakdown["level"])
}

func TestSubmitResult_MissingStudent(t *testing.T) {
	status, body := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
		"correct": 3,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "student_id required", body["error"])
}

func TestSubmitResult_DefaultsApplied(t *testing.T) {
	sid := mustCreateStudent(t, "Inés Default", "2do")

	// Sin correct/final_level/duration: base 10 + 0 + velocidad 10 + nivel 2*5.
	status, body := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
		"student_id": sid,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(30), body["awarded"])
}

func TestSuggestedLevelTracksPerformance(t *testing.T) {
	sid := mustCreateStudent(t, "Juan Adaptativo", "2do")

	// Tres tests flojos: el nivel sugerido cae a 1.
	for i := 0; i < 3; i++ {
		status, _ := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
			"student_id":       sid,
			"correct":          1,
			"final_level":      2,
			"duration_seconds": 300,
		})
		require.Equal(t, fiber.StatusOK, status)
	}

	status, body := doJSON(t, http.MethodGet, "/api/student-stats/"+sid, nil)
	require.Equal(t, fiber.StatusOK, status)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["suggested_level"])

	// Tres tests perfectos después: sube a 3.
	for i := 0; i < 3; i++ {
		status, _ := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
			"student_id":       sid,
			"correct":          5,
			"final_level":      3,
			"duration_seconds": 120,
		})
		require.Equal(t, fiber.StatusOK, status)
	}

	status, body = doJSON(t, http.MethodGet, "/api/student-stats/"+sid, nil)
	require.Equal(t, fiber.StatusOK, status)
	stats = body["stats"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["suggested_level"])
}
