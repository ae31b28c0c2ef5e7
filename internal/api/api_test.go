package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recycling_portal/internal/domain"
	"recycling_portal/internal/portal"
	"recycling_portal/internal/session"
	"recycling_portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *portal.Controller) {
	t.Helper()
	kv := store.NewMemoryKV()
	ctrl, err := portal.New(context.Background(), store.NewSnapshotStore(kv), session.NewKVCurrentUser(kv, ""))
	require.NoError(t, err)
	r := gin.New()
	RegisterRoutes(r, ctrl)
	return r, ctrl
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestHealthz(t *testing.T) {
	r, _ := setupRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetSnapshot(t *testing.T) {
	r, _ := setupRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/admin/snapshot", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Snapshot   domain.Snapshot `json:"snapshot"`
		AdminCount int             `json:"admin_count"`
	}
	decode(t, rec, &resp)
	assert.Len(t, resp.Snapshot.MetalPrices, 4)
	assert.Equal(t, 1, resp.AdminCount)
	assert.Contains(t, rec.Body.String(), `"price":2350`)
}

func TestMetalLifecycle(t *testing.T) {
	r, ctrl := setupRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/admin/metals", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Metal domain.MetalPrice `json:"metal"`
	}
	decode(t, rec, &created)
	assert.Equal(t, "New Metal", created.Metal.Name)

	rec = doJSON(t, r, http.MethodPatch, "/admin/metals/"+created.Metal.ID, map[string]any{"name": "Copper", "unit": "g", "price": 0.0125})
	require.Equal(t, http.StatusOK, rec.Code)
	m, ok := ctrl.Snapshot().Metal(created.Metal.ID)
	require.True(t, ok)
	assert.Equal(t, "Copper", m.Name)
	assert.Equal(t, domain.UnitGram, m.Unit)
	assert.Equal(t, "0.0125", m.Price.String())

	rec = doJSON(t, r, http.MethodPatch, "/admin/metals/"+created.Metal.ID, map[string]any{"unit": "lb"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPatch, "/admin/metals/"+created.Metal.ID, map[string]any{"price": "not a number"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPatch, "/admin/metals/missing", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/admin/metals/"+created.Metal.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok = ctrl.Snapshot().Metal(created.Metal.ID)
	assert.False(t, ok)

	// deleting again is a no-op
	rec = doJSON(t, r, http.MethodDelete, "/admin/metals/"+created.Metal.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStructureDeleteCascades(t *testing.T) {
	r, ctrl := setupRouter(t)
	s := ctrl.Snapshot()
	bulk := s.PricingStructures[2].ID
	johnID := s.Users[1].ID

	rec := doJSON(t, r, http.MethodPatch, "/admin/users/"+johnID, map[string]any{"pricingStructureId": bulk})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/user/prices", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view portal.PriceView
	decode(t, rec, &view)
	assert.Equal(t, "Bulk Volume", view.Pricing.Name)
	assert.Equal(t, "2467.50", view.Rows[0].AdjustedPrice.StringFixed(2))

	rec = doJSON(t, r, http.MethodDelete, "/admin/structures/"+bulk, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted struct {
		ClearedUsers []string `json:"cleared_users"`
	}
	decode(t, rec, &deleted)
	assert.Equal(t, []string{johnID}, deleted.ClearedUsers)

	rec = doJSON(t, r, http.MethodGet, "/user/prices", nil)
	decode(t, rec, &view)
	assert.True(t, view.Pricing.Standard)
	assert.Equal(t, "2350.00", view.Rows[0].AdjustedPrice.StringFixed(2))
}

func TestUpdateUser_UnknownStructure(t *testing.T) {
	r, ctrl := setupRouter(t)
	johnID := ctrl.Snapshot().Users[1].ID

	rec := doJSON(t, r, http.MethodPatch, "/admin/users/"+johnID, map[string]any{"pricingStructureId": "nope"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateUser_ClearStructureAndToggleAdmin(t *testing.T) {
	r, ctrl := setupRouter(t)
	s := ctrl.Snapshot()
	johnID := s.Users[1].ID
	preferred := s.PricingStructures[1].ID
	doJSON(t, r, http.MethodPatch, "/admin/users/"+johnID, map[string]any{"pricingStructureId": preferred})

	rec := doJSON(t, r, http.MethodPatch, "/admin/users/"+johnID, map[string]any{"pricingStructureId": "", "isAdmin": true})

	require.Equal(t, http.StatusOK, rec.Code)
	john, _ := ctrl.Snapshot().User(johnID)
	assert.Nil(t, john.PricingStructureID)
	assert.True(t, john.IsAdmin)

	rec = doJSON(t, r, http.MethodGet, "/admin/admins", nil)
	var admins struct {
		Admins []AdminResponse `json:"admins"`
		Total  int             `json:"total"`
	}
	decode(t, rec, &admins)
	assert.Equal(t, 2, admins.Total)
}

func TestStructureAndUserCreation(t *testing.T) {
	r, _ := setupRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/admin/structures", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ps struct {
		Structure domain.PricingStructure `json:"structure"`
	}
	decode(t, rec, &ps)
	assert.Equal(t, "1", ps.Structure.Multiplier.String())

	rec = doJSON(t, r, http.MethodPatch, "/admin/structures/"+ps.Structure.ID, map[string]any{"multiplier": 1.1, "description": "Partners"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ps)
	assert.Equal(t, "1.1", ps.Structure.Multiplier.String())
	assert.Equal(t, "Partners", ps.Structure.Description)

	rec = doJSON(t, r, http.MethodPost, "/admin/users", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var us struct {
		User domain.User `json:"user"`
	}
	decode(t, rec, &us)
	assert.Equal(t, "New User", us.User.Name)

	rec = doJSON(t, r, http.MethodDelete, "/admin/users/"+us.User.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCurrentUserAndProfile(t *testing.T) {
	r, ctrl := setupRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/user/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var current struct {
		User       *domain.User  `json:"user"`
		Selectable []domain.User `json:"selectable"`
	}
	decode(t, rec, &current)
	require.NotNil(t, current.User)
	assert.Equal(t, "John Supplier", current.User.Name)
	assert.Len(t, current.Selectable, 1)

	added := ctrl.AddUser(context.Background())
	rec = doJSON(t, r, http.MethodPut, "/user/current", SelectUserRequest{ID: added.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPatch, "/user/profile", map[string]any{"name": "Acme Scrap"})
	require.Equal(t, http.StatusOK, rec.Code)
	u, _ := ctrl.Snapshot().User(added.ID)
	assert.Equal(t, "Acme Scrap", u.Name)

	rec = doJSON(t, r, http.MethodPut, "/user/current", SelectUserRequest{ID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile_NoCurrentUser(t *testing.T) {
	r, ctrl := setupRouter(t)
	ctrl.DeleteUser(context.Background(), ctrl.Snapshot().Users[1].ID)

	rec := doJSON(t, r, http.MethodPatch, "/user/profile", map[string]any{"name": "x"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
