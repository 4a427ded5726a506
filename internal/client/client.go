// Package client is the data layer over the catalog GraphQL API: it
// attaches bearer tokens, fetches the full list, issues mutations, and
// keeps the last successfully fetched list as a transient cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"bookcatalog/internal/book"
)

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// Client talks to the catalog API. Mutations never touch the cache:
// callers re-fetch with Books for freshness.
type Client struct {
	endpoint   string
	httpClient *http.Client
	tokens     TokenSource

	mu     sync.RWMutex
	cached []book.Book
}

func New(endpoint string, tokens TokenSource) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: tokens,
	}
}

const (
	booksQuery = `query GetBooks { books { id name description category } }`

	bookQuery = `query GetBook($id: Int!) { book(id: $id) { id name description category } }`

	createMutation = `mutation CreateBook($name: String!, $description: String!, $category: String) {
  createBook(name: $name, description: $description, category: $category) { id name description category }
}`

	updateMutation = `mutation UpdateBook($id: Int!, $name: String, $description: String, $category: String) {
  updateBook(id: $id, name: $name, description: $description, category: $category) { id name description category }
}`

	removeMutation = `mutation RemoveBook($id: Int!) { removeBook(id: $id) }`
)

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve token: %w", err)
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.endpoint)
	}

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("graphql: %s", gr.Errors[0].Message)
	}
	if out != nil {
		return json.Unmarshal(gr.Data, out)
	}
	return nil
}

// Books fetches the full catalog and replaces the cached copy.
func (c *Client) Books(ctx context.Context) ([]book.Book, error) {
	var out struct {
		Books []book.Book `json:"books"`
	}
	if err := c.do(ctx, booksQuery, nil, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = out.Books
	c.mu.Unlock()
	return out.Books, nil
}

// Cached returns a copy of the last successfully fetched list. It may be
// stale; mutations do not update it.
func (c *Client) Cached() []book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]book.Book, len(c.cached))
	copy(out, c.cached)
	return out
}

// Book fetches a single book by id.
func (c *Client) Book(ctx context.Context, id int64) (book.Book, error) {
	var out struct {
		Book book.Book `json:"book"`
	}
	if err := c.do(ctx, bookQuery, map[string]interface{}{"id": id}, &out); err != nil {
		return book.Book{}, err
	}
	return out.Book, nil
}

// Create inserts a new book and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, in book.CreateInput) (book.Book, error) {
	variables := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
	}
	if in.Category != "" {
		variables["category"] = in.Category
	}

	var out struct {
		CreateBook book.Book `json:"createBook"`
	}
	if err := c.do(ctx, createMutation, variables, &out); err != nil {
		return book.Book{}, err
	}
	return out.CreateBook, nil
}

// Update sends a partial update; nil fields are omitted from the request.
func (c *Client) Update(ctx context.Context, id int64, in book.UpdateInput) (book.Book, error) {
	variables := map[string]interface{}{"id": id}
	if in.Name != nil {
		variables["name"] = *in.Name
	}
	if in.Description != nil {
		variables["description"] = *in.Description
	}
	if in.Category != nil {
		variables["category"] = *in.Category
	}

	var out struct {
		UpdateBook book.Book `json:"updateBook"`
	}
	if err := c.do(ctx, updateMutation, variables, &out); err != nil {
		return book.Book{}, err
	}
	return out.UpdateBook, nil
}

// Remove deletes a book by id and reports whether a row was removed.
func (c *Client) Remove(ctx context.Context, id int64) (bool, error) {
	var out struct {
		RemoveBook bool `json:"removeBook"`
	}
	if err := c.do(ctx, removeMutation, map[string]interface{}{"id": id}, &out); err != nil {
		return false, err
	}
	return out.RemoveBook, nil
}

// RemoveAll deletes every id with independent concurrent requests and
// waits for all of them. If any delete fails the whole action reports
// failure; the others are not cancelled, so the batch can partially
// apply. Callers should re-fetch afterwards either way.
func (c *Client) RemoveAll(ctx context.Context, ids []int64) error {
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if _, err := c.Remove(ctx, id); err != nil {
				return fmt.Errorf("delete book %d: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}
