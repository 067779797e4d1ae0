// Package api is the HTTP client for the awarddeck backend. Calls are
// one-shot: no retries and no partial-success tracking; any transport or
// server error fails the operation with the server's message verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Client is the backend surface the editor needs. Tests provide fakes.
type Client interface {
	Health(ctx context.Context) error
	List(ctx context.Context) ([]model.Awardee, error)
	Upsert(ctx context.Context, a model.Awardee) (*model.Awardee, error)
	UpsertBatch(ctx context.Context, deck []model.Awardee) error
	Delete(ctx context.Context, id int) error
	UploadPhoto(ctx context.Context, filename string, r io.Reader) (string, string, error)
	Categories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
}

type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPClient(baseURL, token string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorBody
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func (c *HTTPClient) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("unexpected health status: %q", out.Status)
	}
	return nil
}

func (c *HTTPClient) List(ctx context.Context) ([]model.Awardee, error) {
	var out struct {
		Awardees []model.Awardee `json:"awardees"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/awardees", nil, &out); err != nil {
		return nil, err
	}
	return out.Awardees, nil
}

func (c *HTTPClient) Upsert(ctx context.Context, a model.Awardee) (*model.Awardee, error) {
	var out struct {
		Success bool           `json:"success"`
		Awardee *model.Awardee `json:"awardee"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/awardees", a, &out); err != nil {
		return nil, err
	}
	return out.Awardee, nil
}

func (c *HTTPClient) UpsertBatch(ctx context.Context, deck []model.Awardee) error {
	payload := struct {
		Awardees []model.Awardee `json:"awardees"`
	}{Awardees: deck}
	return c.doJSON(ctx, http.MethodPost, "/awardees/batch", payload, nil)
}

func (c *HTTPClient) Delete(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/awardees/"+strconv.Itoa(id), nil, nil)
}

func (c *HTTPClient) UploadPhoto(ctx context.Context, filename string, r io.Reader) (string, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return "", "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", "", err
	}
	if err := mw.Close(); err != nil {
		return "", "", err
	}

	var out struct {
		Success   bool   `json:"success"`
		PhotoPath string `json:"photoPath"`
		PhotoURL  string `json:"photoUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload-photo", &buf, mw.FormDataContentType(), &out); err != nil {
		return "", "", err
	}
	return out.PhotoPath, out.PhotoURL, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/custom-categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *HTTPClient) SaveCategories(ctx context.Context, categories []string) error {
	payload := struct {
		Categories []string `json:"categories"`
	}{Categories: categories}
	return c.doJSON(ctx, http.MethodPost, "/custom-categories", payload, nil)
}
