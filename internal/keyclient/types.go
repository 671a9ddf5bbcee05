package keyclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// KeyID is the server-assigned identifier of an API key. The wire form may
// be a JSON string or a JSON number; both decode to the same KeyID.
type KeyID string

func (id KeyID) String() string {
	return string(id)
}

func (id *KeyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*id = KeyID(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("key id must be a string or number: %w", err)
	}
	*id = KeyID(number.String())
	return nil
}

type APIKey struct {
	ID    KeyID  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Usage int64  `json:"usage"`
}

// Draft is the editable part of a key. An empty Value on create asks the
// server to generate one.
type Draft struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Usage int64  `json:"usage"`
}

type updateRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Usage int64  `json:"usage"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type listKeysResponse struct {
	Items []APIKey `json:"items"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
