package router

import (
	"net/http"
	"testing"
	"time"

	"github.com/inkwell/internal/db"
)

func TestCreatePostRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]any{"title": "Sneaky", "content": "x", "status": db.PostStatusPublished}

	w := env.do(t, http.MethodPost, "/posts", "", payload)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Unauthorized - Admin only" {
		t.Fatalf("unexpected error body %v", got)
	}

	// 普通用户同样被拒。
	reg := env.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email": "[email protected]", "password": "pw", "name": "Reader",
	})
	if reg.Code != http.StatusOK {
		t.Fatalf("register: %d %s", reg.Code, reg.Body.String())
	}
	userToken := decodeBody(t, reg)["token"].(string)

	w = env.do(t, http.MethodPost, "/posts", userToken, payload)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin, got %d", w.Code)
	}

	var count int64
	env.db.Model(&db.Post{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected request must not create posts, got %d", count)
	}
}

func TestCreateAndFetchPostIncrementsViews(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/posts", env.adminToken, map[string]any{
		"title":   "Hello World",
		"content": "# Heading\n\nBody text.",
		"format":  "markdown",
		"status":  db.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post: %d %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	if created["slug"] != "hello-world" {
		t.Fatalf("expected derived slug, got %v", created["slug"])
	}

	first := env.do(t, http.MethodGet, "/posts/hello-world", "", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("get post: %d %s", first.Code, first.Body.String())
	}
	second := env.do(t, http.MethodGet, "/posts/hello-world", "", nil)

	got := decodeBody(t, second)
	if got["view_count"].(float64) != 2 {
		t.Fatalf("expected view_count 2 after two fetches, got %v", got["view_count"])
	}
	if got["content_html"] == nil || got["content_html"] == "" {
		t.Fatalf("expected rendered content_html on detail view")
	}
}

func TestListPostsHidesDraftsByDefault(t *testing.T) {
	env := setupTestEnv(t)

	for _, p := range []map[string]any{
		{"title": "Live One", "content": "x", "status": db.PostStatusPublished},
		{"title": "Secret Draft", "content": "x"},
	} {
		if w := env.do(t, http.MethodPost, "/posts", env.adminToken, p); w.Code != http.StatusOK {
			t.Fatalf("create post: %d %s", w.Code, w.Body.String())
		}
	}

	public := decodeBody(t, env.do(t, http.MethodGet, "/posts", "", nil))
	if public["total"].(float64) != 1 {
		t.Fatalf("expected 1 published post publicly, got %v", public["total"])
	}

	all := decodeBody(t, env.do(t, http.MethodGet, "/posts?all=true", env.adminToken, nil))
	if all["total"].(float64) != 2 {
		t.Fatalf("expected 2 posts with all=true, got %v", all["total"])
	}
}

func TestPublishTransitionFansOutToSubscribers(t *testing.T) {
	env := setupTestEnv(t)

	if w := env.do(t, http.MethodPost, "/subscribers", "", map[string]any{"email": "[email protected]"}); w.Code != http.StatusOK {
		t.Fatalf("subscribe: %d %s", w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodPost, "/posts", env.adminToken, map[string]any{
		"title": "Still Cooking", "content": "draft body",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create draft: %d %s", w.Code, w.Body.String())
	}
	postID := decodeBody(t, w)["id"].(string)

	if len(env.mailer.recipients()) != 0 {
		t.Fatalf("draft creation must not trigger mail")
	}

	w = env.do(t, http.MethodPut, "/posts/"+postID, env.adminToken, map[string]any{
		"title": "Still Cooking", "content": "final body", "status": db.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: %d %s", w.Code, w.Body.String())
	}

	// 扇出在后台 goroutine 里完成，轮询等待投递。
	deadline := time.Now().Add(2 * time.Second)
	for {
		if got := env.mailer.recipients(); len(got) == 1 && got[0] == "[email protected]" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected fan-out to subscriber, got %v", env.mailer.recipients())
		}
		time.Sleep(10 * time.Millisecond)
	}

	// 再次保存已发布的文章不重复群发。
	w = env.do(t, http.MethodPut, "/posts/"+postID, env.adminToken, map[string]any{
		"title": "Still Cooking", "content": "typo fix", "status": db.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second update: %d %s", w.Code, w.Body.String())
	}
	time.Sleep(100 * time.Millisecond)
	if got := env.mailer.recipients(); len(got) != 1 {
		t.Fatalf("re-saving a published post must not re-send, got %v", got)
	}
}

func TestDeletePostCascades(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/posts", env.adminToken, map[string]any{
		"title": "Doomed", "content": "x", "status": db.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post: %d %s", w.Code, w.Body.String())
	}
	postID := decodeBody(t, w)["id"].(string)

	if w := env.do(t, http.MethodPost, "/posts/doomed/comments", "", map[string]any{
		"name": "v", "email": "v@x.io", "content": "bye",
	}); w.Code != http.StatusOK {
		t.Fatalf("submit comment: %d %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodDelete, "/posts/"+postID, env.adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("delete post: %d %s", w.Code, w.Body.String())
	}

	var comments int64
	env.db.Model(&db.Comment{}).Count(&comments)
	if comments != 0 {
		t.Fatalf("expected comments cascaded away, got %d", comments)
	}

	if w := env.do(t, http.MethodGet, "/posts/doomed", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}
