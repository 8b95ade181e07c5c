package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2   string
		expected int
	}{
		{"v0.1.0", "v0.1.0", 0},
		{"0.1.0", "v0.1.0", 0},
		{"v0.1.1", "v0.1.0", 1},
		{"v0.2.0", "v0.10.0", -1},
		{"v1.0", "v1.0.0", 0},
		{"v1.0.1", "v1.0", 1},
		{"v1.2.0-rc1", "v1.2.0", -1},
		{"v1.2.3", "v1.2.3-rc1", 1},
		{"v1.2.3-rc.2", "v1.2.3-rc.10", -1},
		{"v1.2.3+build.5", "v1.2.3", 0},
		{"", "v0.0.1", -1},
		{"garbage", "v0.0.1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.v1+"_vs_"+tt.v2, func(t *testing.T) {
			if got := CompareVersions(tt.v1, tt.v2); got != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.expected)
			}
		})
	}
}

func TestChecker_Check(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name":"v0.3.0","html_url":"https://example.com/v0.3.0"}`))
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}

	rel, err := c.Check(context.Background(), "v0.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rel == nil || rel.TagName != "v0.3.0" {
		t.Fatalf("Expected v0.3.0, got %+v", rel)
	}

	rel, err = c.Check(context.Background(), "v0.3.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rel != nil {
		t.Errorf("Expected no update, got %+v", rel)
	}

	rel, err = c.Check(context.Background(), "v0.3.0-rc1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rel == nil {
		t.Error("Expected the final release to supersede its release candidate")
	}
}

func TestChecker_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}
	if _, err := c.Check(context.Background(), "v0.1.0"); err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}
