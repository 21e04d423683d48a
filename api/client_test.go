package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edumanage/portal/core"
)

func TestClientAttachesTokenHeader(t *testing.T) {
	var gotToken string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-access-token")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(StaticToken("tok-123"), ts.URL)
	if err := c.Get(context.Background(), "/anything", nil); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if gotToken != "tok-123" {
		t.Errorf("token header = %q, want tok-123", gotToken)
	}
}

func TestClientSkipsHeaderWithoutToken(t *testing.T) {
	var hasHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["X-Access-Token"]
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(StaticToken(""), ts.URL)
	if err := c.Get(context.Background(), "/anything", nil); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if hasHeader {
		t.Error("empty token was still attached")
	}
}

func TestClientAccepts201OnGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"_id":"s1"}]`))
	}))
	defer ts.Close()

	var out []struct {
		ID string `json:"_id"`
	}
	c := NewClient(nil, ts.URL)
	if err := c.Get(context.Background(), "/list", &out); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "s1" {
		t.Errorf("decoded %v, want one s1 record", out)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		body        string
		wantExpired bool
		wantMsg     string
	}{
		{name: "401 is session expiry", code: 401, body: `{"message":"jwt expired"}`, wantExpired: true},
		{name: "403 is session expiry", code: 403, body: `{"message":"forbidden"}`, wantExpired: true},
		{name: "message key", code: 400, body: `{"message":"bad input"}`, wantMsg: "bad input"},
		{name: "error key", code: 500, body: `{"error":"broke"}`, wantMsg: "broke"},
		{name: "unparseable body", code: 500, body: `<html>`, wantMsg: "an error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			err := NewClient(nil, ts.URL).Get(context.Background(), "/x", nil)
			if tt.wantExpired {
				if !core.IsSessionExpired(err) {
					t.Fatalf("error = %v, want ErrSessionExpired", err)
				}
				return
			}
			apiErr, ok := err.(*core.APIError)
			if !ok {
				t.Fatalf("error = %T(%v), want *core.APIError", err, err)
			}
			if apiErr.StatusCode != tt.code || apiErr.Message != tt.wantMsg {
				t.Errorf("got %d %q, want %d %q", apiErr.StatusCode, apiErr.Message, tt.code, tt.wantMsg)
			}
		})
	}
}

func TestPostFormSendsMultipart(t *testing.T) {
	var contentType, field string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		field = r.FormValue("message")
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := NewClient(nil, ts.URL)
	err := c.PostForm(context.Background(), "/send", map[string]string{"message": "hello"}, nil)
	if err != nil {
		t.Fatalf("PostForm() failed: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Errorf("content type = %q, want multipart/form-data", contentType)
	}
	if field != "hello" {
		t.Errorf("form field = %q, want hello", field)
	}
}
