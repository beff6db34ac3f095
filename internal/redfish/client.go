package redfish

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

const (
	defaultPort    = 443
	defaultTimeout = 30 * time.Second
)

// Config holds the connection parameters for one management controller.
type Config struct {
	Host      string
	Username  string
	Password  string
	Port      int
	VerifySSL bool
	Timeout   time.Duration
}

// Client is an HTTP client bound to one host, port and credential set.
// It is safe for sequential reuse across all capability packages.
type Client struct {
	baseURL  string
	host     string
	username string
	password string
	http     *http.Client
}

// NewClient builds a client for the given controller. TLS verification
// is disabled unless VerifySSL is set; BMCs commonly serve self-signed
// certificates.
func NewClient(cfg Config) *Client {
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !cfg.VerifySSL, //nolint:gosec
		},
	}

	return &Client{
		baseURL:  fmt.Sprintf("https://%s:%d", cfg.Host, port),
		host:     cfg.Host,
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Host returns the configured hostname, used to tag telemetry records.
func (c *Client) Host() string {
	return c.host
}

// URL resolves a service-relative reference (an @odata.id) against the
// base URL. Absolute references pass through unchanged.
func (c *Client) URL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	return c.baseURL + ref
}

// GetJSON issues a GET for ref and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, ref string, out any) error {
	body, err := c.do(ctx, http.MethodGet, ref, nil, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.New().WithData(errors.ErrMalformedBody, struct {
			URL   string
			Error string
		}{
			URL:   c.URL(ref),
			Error: err.Error(),
		})
	}

	return nil
}

// PatchJSON issues a PATCH with a JSON payload. The If-Match wildcard
// header is required by some BMC firmware for settings resources.
func (c *Client) PatchJSON(ctx context.Context, ref string, payload any) error {
	_, err := c.do(ctx, http.MethodPatch, ref, payload, map[string]string{"If-Match": "*"})
	return err
}

// PostJSON issues a POST with a JSON payload, used for Redfish actions.
func (c *Client) PostJSON(ctx context.Context, ref string, payload any) error {
	_, err := c.do(ctx, http.MethodPost, ref, payload, map[string]string{"If-Match": "*"})
	return err
}

func (c *Client) do(ctx context.Context, method, ref string, payload any, headers map[string]string) ([]byte, error) {
	errFactory := errors.New()
	url := c.URL(ref)

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrTransport, err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errFactory.WithData(errors.ErrTransport, struct {
			URL   string
			Error string
		}{
			URL:   url,
			Error: err.Error(),
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errFactory.WithData(errors.ErrTransport, struct {
			URL   string
			Error string
		}{
			URL:   url,
			Error: err.Error(),
		})
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errFactory.WithData(errors.ErrAuthentication, struct {
			URL    string
			Status int
		}{
			URL:    url,
			Status: resp.StatusCode,
		})
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errFactory.WithData(errors.ErrBadStatus, struct {
			URL    string
			Status int
		}{
			URL:    url,
			Status: resp.StatusCode,
		})
	}

	return body, nil
}
