package keyclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dwizi/dandi/internal/config"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.TLSSkipVerify,
	}
	if cfg.TLSCAFile != "" {
		caBytes, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("read tls ca file: %w", err)
		}
		certPool := x509.NewCertPool()
		if ok := certPool.AppendCertsFromPEM(caBytes); !ok {
			return nil, fmt.Errorf("parse tls ca file")
		}
		tlsConfig.RootCAs = certPool
	}
	if cfg.TLSCertFile != "" || cfg.TLSKeyFile != "" {
		if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
			return nil, fmt.Errorf("both DANDI_TLS_CERT_FILE and DANDI_TLS_KEY_FILE are required")
		}
		clientCert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{clientCert}
	}

	// Zero timeout leaves requests bounded only by their context.
	timeout := time.Duration(cfg.HTTPTimeoutSec) * time.Second

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: tlsConfig,
			},
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if c == nil {
		return nil
	}
	if timeout < time.Second {
		return c
	}
	clone := *c
	if c.http == nil {
		clone.http = &http.Client{Timeout: timeout}
		return &clone
	}
	httpClone := *c.http
	httpClone.Timeout = timeout
	clone.http = &httpClone
	return &clone
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) List(ctx context.Context) ([]APIKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/keys", nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.doJSON(req, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []APIKey{}, nil
	}
	if raw[0] == '[' {
		var items []APIKey
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("list keys: decode response: %w", err)
		}
		if items == nil {
			items = []APIKey{}
		}
		return items, nil
	}
	var wrapped listKeysResponse
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("list keys: decode response: %w", err)
	}
	if wrapped.Items == nil {
		wrapped.Items = []APIKey{}
	}
	return wrapped.Items, nil
}

func (c *Client) Create(ctx context.Context, draft Draft) (APIKey, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Value = strings.TrimSpace(draft.Value)
	if draft.Name == "" {
		return APIKey{}, fmt.Errorf("create key: name is required")
	}
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/api/keys", draft)
	if err != nil {
		return APIKey{}, err
	}
	var created APIKey
	if err := c.doJSON(req, &created); err != nil {
		return APIKey{}, err
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, id KeyID, draft Draft) (APIKey, error) {
	if strings.TrimSpace(id.String()) == "" {
		return APIKey{}, fmt.Errorf("update key: id is required")
	}
	payload := updateRequest{
		Name:  strings.TrimSpace(draft.Name),
		Value: strings.TrimSpace(draft.Value),
		Usage: draft.Usage,
	}
	req, err := c.newJSONRequest(ctx, http.MethodPut, c.keyURL(id), payload)
	if err != nil {
		return APIKey{}, err
	}
	var updated APIKey
	if err := c.doJSON(req, &updated); err != nil {
		return APIKey{}, err
	}
	return updated, nil
}

func (c *Client) Delete(ctx context.Context, id KeyID) error {
	if strings.TrimSpace(id.String()) == "" {
		return fmt.Errorf("delete key: id is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.keyURL(id), nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

func (c *Client) SendContact(ctx context.Context, message ContactMessage) error {
	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Message = strings.TrimSpace(message.Message)
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/api/contact", message)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

func (c *Client) keyURL(id KeyID) string {
	return c.baseURL + "/api/keys/" + url.PathEscape(id.String())
}

func (c *Client) newJSONRequest(ctx context.Context, method, endpoint string, payload any) (*http.Request, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var apiError struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiError)
		message := strings.TrimSpace(apiError.Error)
		if message == "" {
			message = res.Status
		}
		return &APIError{StatusCode: res.StatusCode, Message: message}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
