package ai

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestGroqProviderComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if payload["model"] != "test-model" {
			t.Errorf("model = %v, want test-model", payload["model"])
		}
		format, ok := payload["response_format"].(map[string]interface{})
		if !ok || format["type"] != "json_object" {
			t.Errorf("response_format = %v, want json_object", payload["response_format"])
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"content":"{\"action\":\"help\",\"args\":{}}"}}]}`)
	}))
	defer server.Close()

	p := NewGroqProvider("test-key", "test-model")
	p.endpoint = server.URL

	got, err := p.Complete([]Message{{Role: "user", Content: "help"}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	want := `{"action":"help","args":{}}`
	if got != want {
		t.Errorf("Complete = %q, want %q", got, want)
	}
}

func TestGroqProviderHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewGroqProvider("bad-key", "test-model")
	p.endpoint = server.URL

	if _, err := p.Complete([]Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error for HTTP 401")
	}
}

func TestGroqProviderEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer server.Close()

	p := NewGroqProvider("test-key", "test-model")
	p.endpoint = server.URL

	if _, err := p.Complete([]Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error for empty choices")
	}
}
