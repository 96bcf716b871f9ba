package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
)

func TestSearchBonds_QueryString(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":0,"items":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchBonds(context.Background(), SearchQuery{
		MaturityBucket: "2-3",
		Currency:       "CHF",
		Country:        "CH",
		Page:           1,
		PageSize:       50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"maturity_bucket": "2-3",
		"currency":        "CHF",
		"country":         "CH",
		"page":            "1",
		"page_size":       "50",
	}
	if len(gotQuery) != len(want) {
		t.Fatalf("expected exactly %d params, got %v", len(want), gotQuery)
	}
	for k, v := range want {
		if gotQuery.Get(k) != v {
			t.Fatalf("param %s=%q, want %q", k, gotQuery.Get(k), v)
		}
	}
}

func TestBondDetails_PathEscaping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"valor_id":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.BondDetails(context.Background(), "CH/0012?34#x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "/api/bonds/CH%2F0012%3F34%23x"
	if gotPath != want {
		t.Fatalf("path %q, want %q", gotPath, want)
	}
}

func TestBondVolumes_EmptyShortCircuit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	for _, ids := range [][]string{nil, {}} {
		raw, err := c.BondVolumes(context.Background(), ids)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var out struct {
			Items map[string]json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Items == nil || len(out.Items) != 0 {
			t.Fatalf("expected empty items mapping, got %s", raw)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected zero requests, server saw %d", n)
	}
}

func TestBondVolumes_IDsJoined(t *testing.T) {
	var gotIDs string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		_, _ = w.Write([]byte(`{"items":{}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.BondVolumes(context.Background(), []string{"A1", "B2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotIDs != "A1,B2" {
		t.Fatalf("ids=%q, want %q", gotIDs, "A1,B2")
	}
}

func TestRequestError_PerOperationLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() (json.RawMessage, error)
		want string
	}{
		{"search", func() (json.RawMessage, error) {
			return c.SearchBonds(ctx, SearchQuery{MaturityBucket: "2-3", Currency: "CHF", Country: "CH", Page: 1, PageSize: 50})
		}, "Search failed (404)"},
		{"details", func() (json.RawMessage, error) { return c.BondDetails(ctx, "12345") }, "Details failed (404)"},
		{"curve", func() (json.RawMessage, error) { return c.ReferenceCurve(ctx) }, "Curve failed (404)"},
		{"volumes", func() (json.RawMessage, error) { return c.BondVolumes(ctx, []string{"12345"}) }, "Volumes failed (404)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			if err == nil {
				t.Fatalf("expected error")
			}
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected *RequestError, got %T: %v", err, err)
			}
			if reqErr.Status != http.StatusNotFound {
				t.Fatalf("status %d, want 404", reqErr.Status)
			}
			if err.Error() != tc.want {
				t.Fatalf("message %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestSuccessBodyPassedThrough(t *testing.T) {
	body := `{"total": 3, "items": []}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New(srv.URL)
	raw, err := c.ReferenceCurve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got, want any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	_ = json.Unmarshal([]byte(body), &want)
	gotTotal := got.(map[string]any)["total"]
	if gotTotal != want.(map[string]any)["total"] {
		t.Fatalf("total %v, want %v", gotTotal, want.(map[string]any)["total"])
	}
	if string(raw) != body {
		t.Fatalf("body %q not passed through verbatim, want %q", raw, body)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken":`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ReferenceCurve(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}
