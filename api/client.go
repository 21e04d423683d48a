package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/core"
)

const tokenHeader = "x-access-token"

type (
	// TokenSource supplies the session token attached to every request.
	// An empty token sends the request unauthenticated (login, logout).
	TokenSource interface {
		Token() string
	}

	TokenSourceFunc func() string

	// Client is the one place that talks HTTP to the backend. It attaches the
	// session token, sends JSON or multipart bodies, normalizes the backend's
	// 200/201 inconsistency to "any 2xx is success" and converts failures into
	// typed errors: core.ErrSessionExpired on 401/403, *core.APIError otherwise.
	Client struct {
		BaseURL string
		HTTP    *http.Client
		Tokens  TokenSource
	}
)

func (f TokenSourceFunc) Token() string { return f() }

// StaticToken returns a TokenSource that always yields the given token.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func() string { return token })
}

func NewClient(tokens TokenSource, baseURL ...string) *Client {
	base := core.Conf.GetString("serverURL")
	if len(baseURL) > 0 && baseURL[0] != "" {
		base = baseURL[0]
	}
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: core.Conf.GetDuration("requestTimeout")},
		Tokens:  tokens,
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, in, out interface{}) error {
	body, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, "application/json", out)
}

func (c *Client) Put(ctx context.Context, path string, in, out interface{}) error {
	body, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, "application/json", out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PostForm sends fields as a multipart/form-data body; the registration forms
// and message send post forms rather than JSON.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return errors.Wrap(err, "writing form field "+name)
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing form")
	}
	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set(tokenHeader, token)
		}
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrap(err, method+" "+path)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	// the backend answers 201 on some GETs; treat any 2xx as success
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.newError(res.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decoding response")
		}
	}
	return nil
}

func (c *Client) newError(code int, body []byte) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return core.ErrSessionExpired
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	return core.NewAPIError(code, msg)
}

func jsonBody(in interface{}) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "encoding request")
	}
	return bytes.NewReader(data), nil
}
