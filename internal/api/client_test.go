package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmperov/shopadmin/internal/logging"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticTokens(token), 5*time.Second, logging.Discard())
}

func TestGet_DecodesEnvelopeData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"categories":[{"_id":"c1","name":"Pens"}]}}`))
	}, "tok123")

	type listData struct {
		Categories []struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"categories"`
	}

	got, err := Get[listData](context.Background(), c, "/api/categories", nil)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Pens", got.Categories[0].Name)
}

func TestGet_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}, "")

	q := url.Values{}
	q.Set("page", "2")
	q.Set("limit", "10")
	_, err := Get[struct{}](context.Background(), c, "/api/admin/users", q)
	require.NoError(t, err)
}

func TestGet_NoAuthHeaderWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}, "")

	_, err := Get[struct{}](context.Background(), c, "/api/products", nil)
	require.NoError(t, err)
}

func TestEnvelopeFailureBecomesError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		wantMsg  string
	}{
		{
			name:    "success false with message",
			status:  http.StatusOK,
			body:    `{"success":false,"message":"Product not available"}`,
			wantMsg: "Product not available",
		},
		{
			name:     "401 maps to ErrUnauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"success":false,"message":"Invalid token"}`,
			sentinel: ErrUnauthorized,
			wantMsg:  "Invalid token",
		},
		{
			name:     "403 maps to ErrForbidden",
			status:   http.StatusForbidden,
			body:     `{"success":false,"message":"Admins only"}`,
			sentinel: ErrForbidden,
			wantMsg:  "Admins only",
		},
		{
			name:     "404 without body message",
			status:   http.StatusNotFound,
			body:     `{"success":false}`,
			sentinel: ErrNotFound,
			wantMsg:  genericFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			_, err := Get[struct{}](context.Background(), c, "/api/products/x", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			assert.Equal(t, tt.wantMsg, UserMessage(err))
		})
	}
}

func TestUserMessage_FallsBackForPlainErrors(t *testing.T) {
	assert.Equal(t, genericFailure, UserMessage(errors.New("dial tcp: refused")))
}

func TestPostJSON_SendsPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Pens", body["name"])

		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"c9","name":"Pens"}}`))
	}, "tok")

	type category struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	got, err := PostJSON[category](context.Background(), c, "/api/categories", map[string]string{"name": "Pens"})
	require.NoError(t, err)
	assert.Equal(t, "c9", got.ID)
}

func TestPutForm_SendsMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Pen", r.FormValue("name"))
		assert.Equal(t, `["old.jpg"]`, r.FormValue("deleteImages"))

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.jpg", files[0].Filename)

		f, err := files[1].Open()
		require.NoError(t, err)
		defer f.Close()
		buf := make([]byte, 4)
		n, _ := f.Read(buf)
		assert.Equal(t, "imgB", string(buf[:n]))

		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"p1"}}`))
	}, "tok")

	form := NewFormBody().
		AddField("name", "Pen").
		AddField("deleteImages", `["old.jpg"]`).
		AddFile("images", "a.jpg", []byte("imgA")).
		AddFile("images", "b.jpg", []byte("imgB"))

	type product struct {
		ID string `json:"_id"`
	}
	got, err := PutForm[product](context.Background(), c, "/api/products/p1", form)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestDelete(t *testing.T) {
	var called int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"message":"deleted"}`))
	}, "tok")

	require.NoError(t, c.Delete(context.Background(), "/api/products/p1"))
	assert.Equal(t, 1, called)
}

func TestAssetURL(t *testing.T) {
	c := NewClient("http://shop.local/", staticTokens(""), time.Second, logging.Discard())
	assert.Equal(t, "http://shop.local/uploads/a.jpg", c.AssetURL("a.jpg"))
}
