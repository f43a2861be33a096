package tests

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRewards_SummaryMatchesTotal(t *testing.T) {
	sid := mustCreateStudent(t, "Karla Rewards", "1ro")

	status, _ := doJSON(t, http.MethodPost, "/api/video-completo", map[string]string{
		"student_id": sid,
		"video_id":   "test_vid_1",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
		"student_id":       sid,
		"correct":          4,
		"final_level":      3,
		"duration_seconds": 180,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, http.MethodGet, "/api/rewards?student_id="+sid, nil)
	require.Equal(t, fiber.StatusOK, status)

	total := body["total"].(float64)
	assert.Equal(t, float64(74), total) // 10 del video + 64 del test

	summary := body["summary"].(map[string]interface{})
	sum := 0.0
	for _, v := range summary {
		entry := v.(map[string]interface{})
		sum += entry["points"].(float64)
	}
	assert.Equal(t, total, sum)

	videoSummary := summary["video"].(map[string]interface{})
	assert.Equal(t, float64(1), videoSummary["count"])
	assert.Equal(t, float64(10), videoSummary["points"])

	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	// Más reciente primero: el test se registró después del video.
	first := items[0].(map[string]interface{})
	assert.Equal(t, "test", first["type"])
}

func TestGetRewards_EmptyStudent(t *testing.T) {
	sid := mustCreateStudent(t, "Lola Sinpuntos", "1ro")

	status, body := doJSON(t, http.MethodGet, "/api/rewards?student_id="+sid, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])
	assert.Empty(t, body["items"])
}

func TestGetResults_Analytics(t *testing.T) {
	sid := mustCreateStudent(t, "Mario Results", "2do")

	for _, correct := range []int{2, 3, 5} {
		status, _ := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
			"student_id":       sid,
			"correct":          correct,
			"final_level":      2,
			"duration_seconds": 200,
		})
		require.Equal(t, fiber.StatusOK, status)
	}

	status, body := doJSON(t, http.MethodGet, "/api/results?student_id="+sid, nil)
	require.Equal(t, fiber.StatusOK, status)

	results := body["results"].([]interface{})
	require.Len(t, results, 3)
	// Orden descendente por fecha: el último test primero.
	first := results[0].(map[string]interface{})
	assert.Equal(t, float64(5), first["correct"])

	analytics := body["analytics"].(map[string]interface{})
	assert.Equal(t, float64(3), analytics["total_tests"])
	assert.Equal(t, 3.3, analytics["avg_score"])
	assert.Equal(t, float64(5), analytics["best_score"])
	assert.Equal(t, float64(2), analytics["avg_level"])
}

func TestGetResults_EmptyStudent(t *testing.T) {
	sid := mustCreateStudent(t, "Nora Sinresultados", "2do")

	status, body := doJSON(t, http.MethodGet, "/api/results?student_id="+sid, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["results"])

	analytics := body["analytics"].(map[string]interface{})
	assert.Equal(t, float64(0), analytics["total_tests"])
	assert.Equal(t, float64(0), analytics["avg_score"])
}

func TestReadAllIdempotent(t *testing.T) {
	sid := mustCreateStudent(t, "Olga Idempotente", "3ro")

	status, _ := doJSON(t, http.MethodPost, "/api/test-result", map[string]interface{}{
		"student_id": sid,
		"correct":    3,
	})
	require.Equal(t, fiber.StatusOK, status)

	_, first := doJSON(t, http.MethodGet, "/api/results?student_id="+sid, nil)
	_, second := doJSON(t, http.MethodGet, "/api/results?student_id="+sid, nil)
	assert.Equal(t, first, second)
}
