package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := Initialize("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestUnreadTotalRoundTrip(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetUnreadTotal(1)
	require.Error(t, err)

	require.NoError(t, client.SetUnreadTotal(1, 7, time.Minute))
	total, err := client.GetUnreadTotal(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	require.NoError(t, client.DeleteUnreadTotal(1))
	_, err = client.GetUnreadTotal(1)
	require.Error(t, err)
}

func TestListCache(t *testing.T) {
	client := newTestClient(t)

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	var missed []row
	require.Error(t, client.GetList("orders", &missed))

	require.NoError(t, client.SetList("orders", []row{{ID: 1, Name: "ORD-001"}}, time.Minute))
	var cached []row
	require.NoError(t, client.GetList("orders", &cached))
	require.Len(t, cached, 1)
	assert.Equal(t, "ORD-001", cached[0].Name)

	require.NoError(t, client.InvalidateList("orders"))
	require.Error(t, client.GetList("orders", &cached))
}

func TestInitializeRejectsBadURL(t *testing.T) {
	_, err := Initialize("not-a-url")
	require.Error(t, err)
}
