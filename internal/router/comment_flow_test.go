package router

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/inkwell/internal/db"
)

func TestCommentModerationFlow(t *testing.T) {
	env := setupTestEnv(t)

	if w := env.do(t, http.MethodPost, "/posts", env.adminToken, map[string]any{
		"title": "Open Thread", "content": "discuss", "status": db.PostStatusPublished,
	}); w.Code != http.StatusOK {
		t.Fatalf("create post: %d %s", w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodPost, "/posts/open-thread/comments", "", map[string]any{
		"name": "Visitor", "email": "[email protected]", "content": "First!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit comment: %d %s", w.Code, w.Body.String())
	}
	submitted := decodeBody(t, w)
	if submitted["status"] != db.CommentStatusPending {
		t.Fatalf("expected pending status, got %v", submitted["status"])
	}
	commentID := submitted["id"].(string)

	// 审核前公共列表为空。
	var publicList []map[string]any
	w = env.do(t, http.MethodGet, "/posts/open-thread/comments", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &publicList); err != nil {
		t.Fatalf("decode public comments: %v", err)
	}
	if len(publicList) != 0 {
		t.Fatalf("pending comment leaked publicly: %v", publicList)
	}

	w = env.do(t, http.MethodPut, "/admin/comments/"+commentID, env.adminToken, map[string]any{
		"status": db.CommentStatusApproved,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("moderate: %d %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/posts/open-thread/comments", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &publicList); err != nil {
		t.Fatalf("decode public comments: %v", err)
	}
	if len(publicList) != 1 {
		t.Fatalf("expected 1 approved comment, got %d", len(publicList))
	}
	if _, ok := publicList[0]["email"]; ok {
		t.Fatalf("commenter email must never appear publicly: %v", publicList[0])
	}
	if publicList[0]["name"] != "Visitor" {
		t.Fatalf("unexpected public comment: %v", publicList[0])
	}
}

func TestAdminCommentListRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)

	if w := env.do(t, http.MethodGet, "/admin/comments", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w := env.do(t, http.MethodGet, "/admin/comments?status=pending", env.adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list: %d %s", w.Code, w.Body.String())
	}
}

func TestSubmitCommentToMissingPost(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/posts/no-such-post/comments", "", map[string]any{
		"name": "v", "email": "v@x.io", "content": "hello?",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["error"]; got != "Post not found" {
		t.Fatalf("unexpected error body %v", got)
	}
}
