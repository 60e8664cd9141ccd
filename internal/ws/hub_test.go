package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-console/internal/events"
)

func TestHandleResourceEventEnqueuesChangeMessage(t *testing.T) {
	h := NewHub(zap.NewNop())

	err := h.HandleResourceEvent(context.Background(), events.Event{
		Type:     events.ResourceDeleted,
		Resource: "invoices",
		ID:       6,
	})
	require.NoError(t, err)

	select {
	case raw := <-h.broadcast:
		var msg ChangeMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "invoices", msg.Resource)
		assert.Equal(t, "deleted", msg.Action)
		assert.EqualValues(t, 6, msg.ID)
	default:
		t.Fatal("no message enqueued for broadcast")
	}
}

func TestHandleResourceEventDropsWhenBacklogFull(t *testing.T) {
	h := NewHub(zap.NewNop())

	// nothing drains the channel here, so filling its buffer saturates the feed
	for i := 0; i < cap(h.broadcast); i++ {
		h.broadcast <- []byte("{}")
	}

	err := h.HandleResourceEvent(context.Background(), events.Event{
		Type:     events.ResourceCreated,
		Resource: "orders",
		ID:       1,
	})
	require.NoError(t, err, "a saturated feed drops the message instead of blocking")
	assert.Len(t, h.broadcast, cap(h.broadcast))
}
