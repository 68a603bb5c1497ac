package holidayinfra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const feriadosBody = `{
  "status": "success",
  "data": [
    {"date": "2024-12-25", "title": "Navidad", "extra": "Civil e Irrenunciable"},
    {"date": "2025-01-01", "title": "Año Nuevo", "extra": "Civil e Irrenunciable"},
    {"date": "2025-04-18", "title": "Viernes Santo", "extra": "Religioso"},
    {"date": "2025-13-40", "title": "Roto"},
    {"date": "2025-05-01", "title": "Día Nacional del Trabajo"}
  ]
}`

func TestFeriadosClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feriadosBody))
	}))
	defer srv.Close()

	client := NewFeriadosClient(srv.URL, time.Second)
	got, err := client.Fetch(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := []string{"2025-01-01", "2025-04-18", "2025-05-01"}
	if len(got) != len(want) {
		t.Fatalf("Fetch() returned %d holidays, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Date.String() != w {
			t.Errorf("holiday[%d] = %s, want %s", i, got[i].Date, w)
		}
	}
	if got[0].Title != "Año Nuevo" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestFeriadosClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(feriadosBody))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewFeriadosClient(srv.URL, 50*time.Millisecond)
			if _, err := client.Fetch(context.Background(), 2025); err == nil {
				t.Fatal("Fetch() expected error")
			}
		})
	}
}

func TestNewFeriadosClient_Defaults(t *testing.T) {
	c := NewFeriadosClient("", 0)
	if c.url != DefaultFeriadosURL {
		t.Errorf("url = %s", c.url)
	}
	if c.httpClient.Timeout != defaultHTTPTimeout {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
}
