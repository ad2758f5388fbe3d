package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/common"
)

// Client talks to the report service. Construct with New, then optionally
// wire SetTokenSource and SetUnauthorizedHandler before issuing calls.
type Client struct {
	baseURL        string
	httpc          *http.Client
	tokenFn        func() string
	onUnauthorized func()
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SetTokenSource registers the function that supplies the current session
// token. An empty return means no Authorization header is sent.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenFn = fn
}

// SetUnauthorizedHandler registers the hook invoked once per request that
// receives HTTP 401, before the error is returned to the caller.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

type statusResponse struct {
	Status string `json:"status"`
}

func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out models.LoginResponse
	err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", nil, body, &out)
	return out, err
}

func (c *Client) ListReports(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	err := c.do(ctx, "list reports", http.MethodGet, "/api/reports", nil, nil, &out)
	return out, err
}

func (c *Client) PostReport(ctx context.Context, report models.Report) error {
	var out statusResponse
	return c.do(ctx, "post report", http.MethodPost, "/api/reports", nil, report, &out)
}

// UpdateReport replaces the editable field subset of one report. The client
// never patches partially: fields carries the whole edit draft.
func (c *Client) UpdateReport(ctx context.Context, boreholeID string, fields map[string]string) error {
	var out statusResponse
	path := "/api/reports/" + url.PathEscape(boreholeID)
	return c.do(ctx, "update report", http.MethodPut, path, nil, fields, &out)
}

func (c *Client) DeleteReport(ctx context.Context, boreholeID string) error {
	var out statusResponse
	path := "/api/reports/" + url.PathEscape(boreholeID)
	return c.do(ctx, "delete report", http.MethodDelete, path, nil, nil, &out)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, "list users", http.MethodGet, "/api/users", nil, nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	body := map[string]string{"email": email, "password": password, "role": string(role)}
	var out models.User
	err := c.do(ctx, "create user", http.MethodPost, "/api/users", nil, body, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, email string) error {
	var out statusResponse
	path := "/api/users/" + url.PathEscape(email)
	return c.do(ctx, "delete user", http.MethodDelete, path, nil, nil, &out)
}

// GetSummary fetches the weekly or monthly summary. Empty filter values are
// omitted from the query string rather than sent as empty parameters.
func (c *Client) GetSummary(ctx context.Context, period string, filters map[string]string) (models.SummaryResponse, error) {
	query := url.Values{}
	query.Set("period", period)
	for key, value := range filters {
		if value == "" {
			continue
		}
		query.Set(key, value)
	}
	var out models.SummaryResponse
	err := c.do(ctx, "get summary", http.MethodGet, "/api/summaries", query, nil, &out)
	return out, err
}

func (c *Client) GetDashboard(ctx context.Context) (models.DashboardResponse, error) {
	var out models.DashboardResponse
	err := c.do(ctx, "get dashboard", http.MethodGet, "/api/dashboard", nil, nil, &out)
	return out, err
}

// AskAI submits a question with optional free-text context and the prior
// conversation as alternating user/assistant turns.
func (c *Client) AskAI(ctx context.Context, question, contextText string, history []models.ChatTurn) (models.AIAnswer, error) {
	body := map[string]any{"question": question}
	if contextText != "" {
		body["context"] = contextText
	}
	if len(history) > 0 {
		body["history"] = history
	}
	var out models.AIAnswer
	err := c.do(ctx, "ask ai", http.MethodPost, "/api/ai/analyze", nil, body, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Op: op, Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&detail); decodeErr == nil {
			apiErr.Message = detail.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}
