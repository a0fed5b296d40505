package router

import (
	"net/http"
	"testing"
)

func TestCategoryCreateAndList(t *testing.T) {
	env := setupTestEnv(t)

	if w := env.do(t, http.MethodPost, "/categories", "", map[string]any{"name": "Tech"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without admin token, got %d", w.Code)
	}

	w := env.do(t, http.MethodPost, "/categories", env.adminToken, map[string]any{
		"name": "Tech", "color": "#3B82F6", "sort_order": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create category: %d %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["slug"] != "tech" {
		t.Fatalf("expected derived slug, got %s", w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/categories", env.adminToken, map[string]any{"name": "Tech"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate category, got %d", w.Code)
	}

	list := decodeList(t, env.do(t, http.MethodGet, "/categories", "", nil))
	if len(list) != 1 || list[0]["name"] != "Tech" {
		t.Fatalf("unexpected category list: %v", list)
	}
}

func TestTagCreateAndList(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/tags", env.adminToken, map[string]any{"name": "Go"})
	if w.Code != http.StatusOK {
		t.Fatalf("create tag: %d %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodPost, "/tags", env.adminToken, map[string]any{"name": "Go"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate tag, got %d", w.Code)
	}

	list := decodeList(t, env.do(t, http.MethodGet, "/tags", "", nil))
	if len(list) != 1 || list[0]["name"] != "Go" {
		t.Fatalf("unexpected tag list: %v", list)
	}
}
