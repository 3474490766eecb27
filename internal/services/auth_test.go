package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmperov/shopadmin/internal/api"
)

func TestAuthService_Login(t *testing.T) {
	client := newAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@shop.io", body["email"])
		assert.Equal(t, "s3cret", body["password"])

		_, _ = w.Write([]byte(`{"success":true,"data":{
			"token":"tok-abc",
			"user":{"_id":"u1","name":"Root","email":"admin@shop.io","role":"admin"}}}`))
	}))

	creds, err := NewAuthService(client).Login(context.Background(), "admin@shop.io", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", creds.Token)
	assert.True(t, creds.User.IsAdmin())
}

func TestAuthService_LoginFailure(t *testing.T) {
	client := newAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid email or password"}`))
	}))

	_, err := NewAuthService(client).Login(context.Background(), "admin@shop.io", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, "Invalid email or password", api.UserMessage(err))
}

func TestDashboardService_Stats(t *testing.T) {
	client := newAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/dashboard", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"totalSales":1999.5,"totalOrders":12,"totalUsers":7,
			"lowStockProducts":[{"_id":"p1","name":"Pen","countInStock":1}],
			"recentOrders":[{"_id":"o1","orderStatus":"Pending","totalPrice":10}]}}`))
	}))

	stats, err := NewDashboardService(client).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1999.5, stats.TotalSales)
	assert.Len(t, stats.LowStockProducts, 1)
	assert.Len(t, stats.RecentOrders, 1)
}

func TestCategoryService_CRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"categories":[{"_id":"c1","name":"Pens","isActive":true}]}}`))
	})
	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Pens", body["name"])
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"c9","name":"Pens"}}`))
	})
	mux.HandleFunc("PUT /api/categories/c1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"c1","name":"Markers"}}`))
	})
	mux.HandleFunc("DELETE /api/categories/c1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Category deleted"}`))
	})

	svc := NewCategoryService(newAPIServer(t, mux))
	ctx := context.Background()

	page, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	created, err := svc.Create(ctx, map[string]string{"name": "Pens", "description": "d"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)

	updated, err := svc.Update(ctx, "c1", map[string]string{"name": "Markers", "description": "d"})
	require.NoError(t, err)
	assert.Equal(t, "Markers", updated.Name)

	require.NoError(t, svc.Delete(ctx, "c1"))
}
