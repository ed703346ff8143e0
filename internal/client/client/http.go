package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/common"
	"github.com/dmitrijs2005/portfolioadmin/internal/logging"
)

const maxErrorBody = 64 << 10

// HTTPClient talks to the API over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
		tokens:  tokens,
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+config.EndpointLogin, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var out models.TokenResponse
	if err := c.send(ctx, req, "", &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.generic {
			apiErr.Message = "Login failed"
		}
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, errors.New("login response has no access token")
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, config.EndpointMe, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, config.EndpointProfile, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	return c.writeProfile(ctx, http.MethodPost, p)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	return c.writeProfile(ctx, http.MethodPut, p)
}

func (c *HTTPClient) writeProfile(ctx context.Context, method string, p *models.Profile) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, method, config.EndpointProfile, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := c.do(ctx, http.MethodGet, config.EndpointSkills, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateSkill(ctx context.Context, in models.SkillInput) (*models.Skill, error) {
	var out models.Skill
	if err := c.do(ctx, http.MethodPost, config.EndpointSkills, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSkill(ctx context.Context, id string, in models.SkillInput) (*models.Skill, error) {
	if id == "" {
		return nil, fmt.Errorf("skill: %w", common.ErrIDRequired)
	}
	var out models.Skill
	if err := c.do(ctx, http.MethodPut, config.EndpointSkills+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteSkill(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("skill: %w", common.ErrIDRequired)
	}
	return c.do(ctx, http.MethodDelete, config.EndpointSkills+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, config.EndpointProjects, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	var out models.Project
	if err := c.do(ctx, http.MethodPost, config.EndpointProjects, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("project: %w", common.ErrIDRequired)
	}
	var out models.Project
	if err := c.do(ctx, http.MethodPut, config.EndpointProjects+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("project: %w", common.ErrIDRequired)
	}
	return c.do(ctx, http.MethodDelete, config.EndpointProjects+url.PathEscape(id), nil, nil)
}

// do sends an authenticated JSON request. A missing token fails before any
// network activity.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return common.ErrAuthRequired
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, token, out)
}

func (c *HTTPClient) send(ctx context.Context, req *http.Request, token string, out any) error {
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	log := c.log.With("method", req.Method, "path", req.URL.Path, "request_id", reqID)
	if token != "" {
		log = log.With("token", common.MaskSecret(token, 10))
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode)

	return handleResponse(resp, out)
}

// handleResponse maps non-2xx to *APIError, treats 204 as empty and decodes
// everything else into out.
func handleResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
