package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
)

type testServer struct {
	e  *echo.Echo
	db *bun.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBName:   filepath.Join(t.TempDir(), "test.db"),
	}
	bdb, err := bundb.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := bundb.CreateTables(context.Background(), bdb); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
	t.Cleanup(func() { bdb.Close() })

	e := echo.New()
	Register(e, New(bdb))
	return &testServer{e: e, db: bdb}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func expectMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	got := decode[map[string]string](t, rec)["message"]
	if got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
