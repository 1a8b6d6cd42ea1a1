package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
)

var errBroken = errors.New("connection refused")

func newDemoStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	set, err := fixtures.Default(time.Now())
	require.NoError(t, err)
	return store.NewMemoryStore(set)
}

// brokenStore fails every call the way an unreachable database would.
type brokenStore struct {
	store.Store
}

func (brokenStore) ListProducts(context.Context) ([]model.Product, error) { return nil, errBroken }
func (brokenStore) CreateProduct(context.Context, *model.Product) error { return errBroken }
func (brokenStore) ListFeatured(context.Context, bool) ([]model.FeaturedItem, error) {
	return nil, errBroken
}
func (brokenStore) ListOrders(context.Context) ([]model.Order, error) { return nil, errBroken }
func (brokenStore) CreateOrder(context.Context, *model.Order) error { return errBroken }
func (brokenStore) SiteContent(context.Context) (model.SiteContent, error) {
	return model.SiteContent{}, errBroken
}
func (brokenStore) AdminPassword(context.Context) (string, error) { return "", errBroken }
func (brokenStore) Stats(context.Context) (model.Stats, error) { return model.Stats{}, errBroken }
func (brokenStore) Ping(context.Context) error { return errBroken }
func (brokenStore) DeleteProduct(context.Context, string) error { return errBroken }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(router http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
