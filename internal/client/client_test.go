package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/book"
)

type capturedRequest struct {
	authorization string
	body          gqlRequest
}

// stubAPI is a minimal GraphQL endpoint for client tests. The respond
// callback picks the response for each decoded request.
func stubAPI(t *testing.T, respond func(req gqlRequest) (string, int)) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	captured := []capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		mu.Lock()
		captured = append(captured, capturedRequest{
			authorization: r.Header.Get("Authorization"),
			body:          req,
		})
		mu.Unlock()

		body, status := respond(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func TestClient_Books(t *testing.T) {
	const response = `{"data":{"books":[
		{"id":1,"name":"The Toxin Audit","description":"A field guide.","category":"Industrial"},
		{"id":2,"name":"Zero Waste Cities","description":"Municipal strategies.","category":"Municipal"}
	]}}`
	server, captured := stubAPI(t, func(gqlRequest) (string, int) {
		return response, http.StatusOK
	})

	c := New(server.URL, StaticToken("id-token"))

	books, err := c.Books(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "The Toxin Audit", books[0].Name)

	require.Len(t, *captured, 1)
	assert.Equal(t, "Bearer id-token", (*captured)[0].authorization)

	// the fetched list is cached for stale reads
	assert.Equal(t, books, c.Cached())
}

func TestClient_CacheUntouchedByFailedFetch(t *testing.T) {
	calls := 0
	server, _ := stubAPI(t, func(gqlRequest) (string, int) {
		calls++
		if calls == 1 {
			return `{"data":{"books":[{"id":1,"name":"a","description":"d","category":"General"}]}}`, http.StatusOK
		}
		return `{"errors":[{"message":"internal server error"}]}`, http.StatusOK
	})

	c := New(server.URL, StaticToken("t"))

	first, err := c.Books(context.Background())
	require.NoError(t, err)

	_, err = c.Books(context.Background())
	require.Error(t, err)
	assert.Equal(t, first, c.Cached())
}

func TestClient_Create(t *testing.T) {
	server, captured := stubAPI(t, func(gqlRequest) (string, int) {
		return `{"data":{"createBook":{"id":9,"name":"New","description":"d","category":"General"}}}`, http.StatusOK
	})

	c := New(server.URL, StaticToken("t"))

	created, err := c.Create(context.Background(), book.CreateInput{Name: "New", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	// category omitted from variables so the server default applies
	variables := (*captured)[0].body.Variables
	assert.NotContains(t, variables, "category")
	assert.Equal(t, "New", variables["name"])
}

func TestClient_Update_OmitsNilFields(t *testing.T) {
	server, captured := stubAPI(t, func(gqlRequest) (string, int) {
		return `{"data":{"updateBook":{"id":2,"name":"Renamed","description":"d","category":"Municipal"}}}`, http.StatusOK
	})

	c := New(server.URL, StaticToken("t"))
	name := "Renamed"

	updated, err := c.Update(context.Background(), 2, book.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	variables := (*captured)[0].body.Variables
	assert.Equal(t, "Renamed", variables["name"])
	assert.NotContains(t, variables, "description")
	assert.NotContains(t, variables, "category")
}

func TestClient_Remove(t *testing.T) {
	server, _ := stubAPI(t, func(gqlRequest) (string, int) {
		return `{"data":{"removeBook":false}}`, http.StatusOK
	})

	c := New(server.URL, StaticToken("t"))

	removed, err := c.Remove(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestClient_GraphQLErrorSurfaces(t *testing.T) {
	server, _ := stubAPI(t, func(gqlRequest) (string, int) {
		return `{"errors":[{"message":"book #7 not found"}]}`, http.StatusOK
	})

	c := New(server.URL, StaticToken("t"))

	_, err := c.Book(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "book #7 not found")
}

func TestClient_RemoveAll(t *testing.T) {
	t.Run("issues one delete per id", func(t *testing.T) {
		server, captured := stubAPI(t, func(gqlRequest) (string, int) {
			return `{"data":{"removeBook":true}}`, http.StatusOK
		})

		c := New(server.URL, StaticToken("t"))

		err := c.RemoveAll(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)

		seen := map[float64]bool{}
		for _, req := range *captured {
			seen[req.body.Variables["id"].(float64)] = true
		}
		assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, seen)
	})

	t.Run("one failure fails the whole action but skips nothing", func(t *testing.T) {
		server, captured := stubAPI(t, func(req gqlRequest) (string, int) {
			if req.Variables["id"].(float64) == 2 {
				return `{"errors":[{"message":"internal server error"}]}`, http.StatusOK
			}
			return `{"data":{"removeBook":true}}`, http.StatusOK
		})

		c := New(server.URL, StaticToken("t"))

		err := c.RemoveAll(context.Background(), []int64{1, 2, 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delete book 2")
		// the batch is not cancelled on failure; every id was attempted
		assert.Len(t, *captured, 3)
	})
}

func TestClient_TransportError(t *testing.T) {
	server, _ := stubAPI(t, func(gqlRequest) (string, int) {
		return `{"success":false}`, http.StatusInternalServerError
	})

	c := New(server.URL, StaticToken("t"))

	_, err := c.Books(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
