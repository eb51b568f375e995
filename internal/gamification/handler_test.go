package gamification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/sessions"
)

func newPreviewRouter(t *testing.T) (*gin.Engine, sessions.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := sessions.NewMemoryStore()
	handler := NewHandler(diagnostic.DefaultLibrary(), fixedCalculator(store, 40, 60), store)

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r, store
}

func postPreview(t *testing.T, r *gin.Engine, sessionID string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/preview", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPreviewReturnsFullPayload(t *testing.T) {
	r, _ := newPreviewRouter(t)

	answers := []map[string]any{
		{"question": "Is your customer info centralized?", "answer": "No"},
		{"question": "Do you collect customer feedback?", "answer": "Yes"},
		{"question": "Do your tools talk to each other?", "answer": "No"},
		{"question": "Do you track spending?", "answer": "Yes"},
		{"question": "Do you have clear sales goals?", "answer": "Yes"},
		{"question": "Do you run reports without mistakes?", "answer": "Yes"},
		{"question": "Do you know your profit?", "answer": "Yes"},
		{"question": "Have you set a budget?", "answer": "Yes"},
		{"question": "Can you forecast 3 months ahead?", "answer": "Yes"},
		{"question": "Do you follow up on overdue invoices?", "answer": "Yes"},
	}
	resp := postPreview(t, r, "s1", map[string]any{
		"toolName":     "Data Hygiene Snapshot",
		"businessName": "Acme Bakery",
		"answers":      answers,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["score"] != float64(80) {
		t.Fatalf("expected score 80, got %v", payload["score"])
	}
	if payload["bucket"] != "mostly_yes" {
		t.Fatalf("expected mostly_yes bucket, got %v", payload["bucket"])
	}
	for _, key := range []string{"scoreMessage", "insights", "cards", "level", "levelGuide", "leaderboard", "milestones"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing %q in preview payload", key)
		}
	}

	board, ok := payload["leaderboard"].(map[string]any)
	if !ok {
		t.Fatalf("leaderboard has unexpected shape: %T", payload["leaderboard"])
	}
	entries, ok := board["entries"].([]any)
	if !ok || len(entries) != 3 {
		t.Fatalf("expected 3 leaderboard entries, got %v", board["entries"])
	}
	top, _ := entries[0].(map[string]any)
	if top["name"] != "Acme Bakery" {
		t.Fatalf("expected the business on top of the board, got %v", top)
	}
}

func TestPreviewDefaultsBusinessName(t *testing.T) {
	r, _ := newPreviewRouter(t)

	resp := postPreview(t, r, "s1", map[string]any{
		"toolName": "Data Hygiene Snapshot",
		"answers": []map[string]any{
			{"question": "Is your customer info centralized?", "answer": "No"},
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("Your Business")) {
		t.Fatalf("expected default business name in payload")
	}
}

func TestPreviewRejectsMalformedAnswer(t *testing.T) {
	r, _ := newPreviewRouter(t)

	resp := postPreview(t, r, "s1", map[string]any{
		"toolName": "Data Hygiene Snapshot",
		"answers": []map[string]any{
			{"question": "Is your customer info centralized?", "answer": "Maybe"},
		},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestPreviewRequiresToolName(t *testing.T) {
	r, _ := newPreviewRouter(t)

	resp := postPreview(t, r, "s1", map[string]any{
		"answers": []map[string]any{},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
