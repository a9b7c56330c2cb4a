package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no json", "sorry, I cannot do that", ""},
		{"only closing", "} nope", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + content + `}}]}`
}

func TestGenerate_NormalizesModelOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`"Sure! {\"tripTitle\":\"Goa Escape\",\"days\":[{\"day\":1,\"activities\":[{\"place\":\"Baga Beach\"}]}]}"`)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "test-model")
	got, err := c.Generate(context.Background(), "2 days in goa")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got.TripTitle != "Goa Escape" {
		t.Errorf("tripTitle = %q", got.TripTitle)
	}
	if got.Prompt != "2 days in goa" {
		t.Errorf("prompt not stamped: %q", got.Prompt)
	}
	if len(got.Days) != 1 || got.Days[0].Activities[0].MapQuery != "Baga Beach" {
		t.Errorf("normalization not applied: %+v", got.Days)
	}
}

func TestGenerate_SurfacesFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}},
		{"no json in reply", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody(`"sorry, no itinerary today"`)))
		}},
		{"empty choices", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewClient(srv.URL, "", "test-model")
			if _, err := c.Generate(context.Background(), "x"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenerate_MissingURL(t *testing.T) {
	c := NewClient("", "", "")
	if _, err := c.Generate(context.Background(), "x"); err == nil {
		t.Error("expected configuration error")
	}
}
