package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uubo/memberhub/internal/config"
	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/server/http/middleware"
	testhelpers "github.com/uubo/memberhub/internal/test"
)

func newTestRouter(facade *testhelpers.MembershipFacadeStub) *gin.Engine {
	cfg := &config.Config{
		SmaregiAccessToken: "pos-secret",
		AdminEmails:        []string{"admin@example.com"},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, cfg, logger)
}

func postJSON(router *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRouterGatesCustomerEndpoints(t *testing.T) {
	facade := &testhelpers.MembershipFacadeStub{}
	facade.SearchCustomersFn = func(context.Context, string) ([]model.CustomerSummary, error) {
		return []model.CustomerSummary{}, nil
	}
	facade.CustomerDetailFn = func(context.Context, string) (*model.CustomerDetail, error) {
		return &model.CustomerDetail{}, nil
	}
	router := newTestRouter(facade)

	for _, path := range []string{"/api/smaregi/customers/list", "/api/smaregi/customers/detail"} {
		resp := postJSON(router, path, `{"searchString":"x","customerCode":"x"}`, nil)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without token, got %d", path, resp.Code)
		}

		resp = postJSON(router, path, `{"searchString":"x","customerCode":"x"}`, map[string]string{middleware.AccessTokenHeader: "wrong"})
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 with wrong token, got %d", path, resp.Code)
		}

		resp = postJSON(router, path, `{"searchString":"x","customerCode":"x"}`, map[string]string{middleware.AccessTokenHeader: "pos-secret"})
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 with token, got %d", path, resp.Code)
		}
	}
}

func TestRouterWebhookSkipsTokenGate(t *testing.T) {
	recorded := false
	facade := &testhelpers.MembershipFacadeStub{}
	facade.RecordPointUpdateFn = func(context.Context, string, string, int64, int64) (*model.SyncLogEntry, error) {
		recorded = true
		return &model.SyncLogEntry{}, nil
	}
	router := newTestRouter(facade)

	resp := postJSON(router, "/api/smaregi/webhook/point-update", `{"requestId":"req-1","status":"completed"}`, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("webhook must accept unauthenticated calls, got %d", resp.Code)
	}
	if !recorded {
		t.Fatal("expected webhook to reach the sync facade")
	}
}

func TestRouterRegisterAndProfileFlow(t *testing.T) {
	member := &model.Member{ID: "member-1", Email: "taro@example.com"}
	facade := &testhelpers.MembershipFacadeStub{}
	facade.RegisterFn = func(context.Context, string, string, string) (string, error) {
		return "issued-token", nil
	}
	facade.ParseTokenFn = func(token string) (string, error) {
		if token != "issued-token" {
			return "", domainErrors.ErrInvalidCredentials
		}
		return "member-1", nil
	}
	facade.MemberByIDFn = func(_ context.Context, id string) (*model.Member, error) {
		if id != "member-1" {
			return nil, domainErrors.ErrNotFound
		}
		return member, nil
	}
	router := newTestRouter(facade)

	resp := postJSON(router, "/api/user/register", `{"email":"taro@example.com","password":"secret1"}`, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("register failed: %d", resp.Code)
	}
	auth := resp.Header().Get("Authorization")
	if auth != "Bearer issued-token" {
		t.Fatalf("expected issued token header, got %q", auth)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", auth)
	profileResp := httptest.NewRecorder()
	router.ServeHTTP(profileResp, req)
	if profileResp.Code != http.StatusOK {
		t.Fatalf("profile fetch failed: %d", profileResp.Code)
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(profileResp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid profile body: %v", err)
	}
	if body.ID != "member-1" {
		t.Fatalf("unexpected profile: %s", profileResp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	noAuthResp := httptest.NewRecorder()
	router.ServeHTTP(noAuthResp, req)
	if noAuthResp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", noAuthResp.Code)
	}
}

func TestRouterAdminRequiresAllowlist(t *testing.T) {
	facade := &testhelpers.MembershipFacadeStub{}
	facade.ParseTokenFn = func(token string) (string, error) { return token, nil }
	facade.MemberByIDFn = func(_ context.Context, id string) (*model.Member, error) {
		switch id {
		case "admin-1":
			return &model.Member{ID: id, Email: "admin@example.com"}, nil
		case "member-1":
			return &model.Member{ID: id, Email: "taro@example.com"}, nil
		default:
			return nil, domainErrors.ErrNotFound
		}
	}
	facade.SiteSettingsFn = func(context.Context) (model.Document, error) {
		return model.Document{"links": map[string]any{}}, nil
	}
	router := newTestRouter(facade)

	get := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	if resp := get(""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	if resp := get("member-1"); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
	if resp := get("admin-1"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}
