package push

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsAuthenticatedRequest(t *testing.T) {
	var got SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
		assert.Equal(t, expected, r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SendResponse{Success: true, SuccessCount: 2})
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "pass")
	resp, err := client.Send([]string{"5", "6"}, Payload{
		Title: "New message",
		Body:  "hello",
		Data:  map[string]string{"type": "message"},
	}, "high")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, []string{"5", "6"}, got.UserIDs)
	assert.Equal(t, "New message", got.Notification.Title)
	assert.Equal(t, "high", got.Priority)
}

func TestSendToUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"9"}, req.UserIDs)
		assert.Equal(t, "normal", req.Priority)
		json.NewEncoder(w).Encode(SendResponse{Success: true, SuccessCount: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "pass")
	resp, err := client.SendToUser("9", "Title", "Body")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SuccessCount)
}

func TestSendGatewayUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "user", "pass")
	_, err := client.Send([]string{"1"}, Payload{Title: "x"}, "normal")
	require.Error(t, err)
}

func TestSendMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "pass")
	_, err := client.Send([]string{"1"}, Payload{Title: "x"}, "normal")
	require.Error(t, err)
}
