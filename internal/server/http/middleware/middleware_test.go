package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	pkgAuth "github.com/uubo/memberhub/internal/pkg/auth"
	testhelpers "github.com/uubo/memberhub/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSmaregiTokenGate(t *testing.T) {
	router := gin.New()
	router.Use(SmaregiTokenGate("secret"))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", resp.Code)
	}
	var envelope struct {
		Result []any `json:"result"`
		Error  struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if envelope.Result == nil || len(envelope.Result) != 0 {
		t.Fatalf("result must be an empty array, got %s", resp.Body.String())
	}
	if envelope.Error.Code != "UNAUTHORIZED" || envelope.Error.Message != "アクセストークンが無効です。" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AccessTokenHeader, "wrong")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", resp.Code)
	}

	// prefix of the secret must not pass
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AccessTokenHeader, "secre")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for partial token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AccessTokenHeader, "secret")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for exact token, got %d", resp.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(&testhelpers.TokenParserStub{}))
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(&testhelpers.TokenParserStub{ParseTokenFn: func(string) (string, error) {
		return "", pkgAuth.ErrInvalidToken
	}}))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(&testhelpers.TokenParserStub{ParseTokenFn: func(string) (string, error) {
		return "", context.DeadlineExceeded
	}}))
	router.GET("/", func(c *gin.Context) {})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var storedID string
	router = gin.New()
	router.Use(AuthRequired(&testhelpers.TokenParserStub{ParseTokenFn: func(string) (string, error) {
		return "member-42", nil
	}}))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(MemberIDContextKey); ok {
			storedID = v.(string)
		}
		c.Status(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedID != "member-42" {
		t.Fatalf("expected member id in context, got %q", storedID)
	}
}

func TestAdminRequired(t *testing.T) {
	resolver := &testhelpers.MemberResolverStub{MemberByIDFn: func(_ context.Context, id string) (*model.Member, error) {
		switch id {
		case "admin":
			return &model.Member{ID: id, Email: "Admin@Example.com"}, nil
		case "plain":
			return &model.Member{ID: id, Email: "plain@example.com"}, nil
		default:
			return nil, domainErrors.ErrNotFound
		}
	}}

	newRouter := func(memberID string) *gin.Engine {
		router := gin.New()
		if memberID != "" {
			router.Use(func(c *gin.Context) { c.Set(MemberIDContextKey, memberID) })
		}
		router.Use(AdminRequired(resolver, []string{"admin@example.com"}))
		router.GET("/", func(c *gin.Context) {
			email, _ := c.Get(AdminEmailContextKey)
			c.String(http.StatusOK, email.(string))
		})
		return router
	}

	resp := httptest.NewRecorder()
	newRouter("").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without member id, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter("ghost").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown member, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter("plain").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin member, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "管理者権限がありません") {
		t.Fatalf("unexpected forbidden body: %s", resp.Body.String())
	}

	resp = httptest.NewRecorder()
	newRouter("admin").ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for allowlisted member, got %d", resp.Code)
	}
	if resp.Body.String() != "Admin@Example.com" {
		t.Fatalf("expected stored admin email, got %q", resp.Body.String())
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token" {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := extractToken(c); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(buf.String(), "/ping") {
		t.Fatalf("expected request path in log output, got %s", buf.String())
	}
}
