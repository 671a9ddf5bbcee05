package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewRootIncludesExpectedSubcommands(t *testing.T) {
	root := NewRoot(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, path := range [][]string{
		{"serve"},
		{"tui"},
		{"version"},
		{"keys", "list"},
		{"keys", "create"},
		{"keys", "update"},
		{"keys", "delete"},
	} {
		found, _, err := root.Find(path)
		if err != nil || found == root {
			t.Fatalf("expected command %v to exist: %v", path, err)
		}
	}
}

func runKeysCommand(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DANDI_API_URL", serverURL)
	root := NewRoot(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeysListMasksValuesByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"prod","value":"sk-abc123","usage":4200}]`))
	}))
	t.Cleanup(server.Close)

	output, err := runKeysCommand(t, server.URL, "keys", "list")
	if err != nil {
		t.Fatalf("keys list: %v", err)
	}
	if !strings.Contains(output, "*********") {
		t.Fatalf("expected masked value, got %q", output)
	}
	if strings.Contains(output, "sk-abc123") {
		t.Fatalf("expected value hidden, got %q", output)
	}
	if !strings.Contains(output, "4,200") {
		t.Fatalf("expected formatted usage, got %q", output)
	}

	output, err = runKeysCommand(t, server.URL, "keys", "list", "--reveal")
	if err != nil {
		t.Fatalf("keys list --reveal: %v", err)
	}
	if !strings.Contains(output, "sk-abc123") {
		t.Fatalf("expected revealed value, got %q", output)
	}
}

func TestKeysUpdateMergesUnsetFlags(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"k1","name":"prod","value":"sk-abc123","usage":42}]`))
		case http.MethodPut:
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = w.Write([]byte(`{"id":"k1","name":"prod","value":"sk-abc123","usage":43}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(server.Close)

	if _, err := runKeysCommand(t, server.URL, "keys", "update", "k1", "--usage", "43"); err != nil {
		t.Fatalf("keys update: %v", err)
	}
	if body["name"] != "prod" || body["value"] != "sk-abc123" || body["usage"] != float64(43) {
		t.Fatalf("unexpected update body: %#v", body)
	}
}

func TestKeysCreateRequiresName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(server.Close)

	if _, err := runKeysCommand(t, server.URL, "keys", "create"); err == nil {
		t.Fatal("expected error without --name")
	}
}

func TestBoundedTimeout(t *testing.T) {
	if boundedTimeout(0) != 30*time.Second {
		t.Fatalf("expected default 30s, got %s", boundedTimeout(0))
	}
	if boundedTimeout(9999) != 600*time.Second {
		t.Fatalf("expected cap 600s, got %s", boundedTimeout(9999))
	}
}
