package network

import (
	"boardgame-server/pkg/api"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishReachesSessionOnly(t *testing.T) {
	b := NewBroadcaster()
	tab1 := b.Subscribe("s1", "c1")
	tab2 := b.Subscribe("s1", "c2")
	other := b.Subscribe("s2", "c3")

	b.Publish("s1", api.ServerResponse{Type: "UPDATE", SessionID: "s1"})

	require.Len(t, tab1, 1)
	require.Len(t, tab2, 1)
	assert.Empty(t, other)
	assert.Equal(t, "s1", (<-tab1).SessionID)
	assert.Equal(t, 3, b.SubscriberCount())
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe("s1", "c1")
	b.Subscribe("s1", "c2")

	assert.Equal(t, 1, b.Unsubscribe("s1", "c1"))
	_, open := <-ch1
	assert.False(t, open, "channel is closed on unsubscribe")
	assert.True(t, b.HasSubscribers("s1"))

	assert.Equal(t, 0, b.Unsubscribe("s1", "c2"))
	assert.False(t, b.HasSubscribers("s1"))
	assert.Zero(t, b.SubscriberCount())

	// Повторная отписка безопасна
	assert.Equal(t, 0, b.Unsubscribe("s1", "c2"))
}

func TestBroadcaster_ResubscribeReplacesChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Subscribe("s1", "c1")
	fresh := b.Subscribe("s2", "c1")

	_, open := <-old
	assert.False(t, open)
	assert.False(t, b.HasSubscribers("s1"))

	b.SendTo("c1", api.ServerResponse{Type: "UPDATE"})
	assert.Len(t, fresh, 1)
}

func TestBroadcaster_FullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe("s1", "c1")

	for i := 0; i < cap(ch)+10; i++ {
		b.Publish("s1", api.ServerResponse{Type: "UPDATE"})
	}
	assert.Len(t, ch, cap(ch))
}
