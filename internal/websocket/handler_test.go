package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"curling-registry/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerStreamsDirectoryEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := runHub(t)

	router := gin.New()
	router.GET("/user/events", NewHandler(hub, nil).Connect)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/user/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.GetChannelSubscriberCount(events.DirectoryChannel) == 1
	}, time.Second, 5*time.Millisecond)

	envelope, err := events.NewEnvelope(events.EventTypeUserDeleted, "abc", map[string]string{"id": "abc"})
	require.NoError(t, err)
	publisher := events.NewChannelPublisher(hub, events.DirectoryChannel)
	require.NoError(t, publisher.Publish(context.Background(), envelope))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got events.Envelope
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, events.EventTypeUserDeleted, got.EventType)
	assert.Equal(t, "abc", got.AggregateID)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
