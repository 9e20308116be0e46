package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamManager_SubscribeBroadcast(t *testing.T) {
	sm := NewStreamManager()
	ch, cancel := sm.Subscribe("s1")
	other, cancelOther := sm.Subscribe("s2")
	defer cancelOther()

	sm.Broadcast("s1", "hello")
	assert.Equal(t, "hello", <-ch)
	assert.Empty(t, other)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, sm.Subscribers("s1"))
	assert.Equal(t, 1, sm.Subscribers("s2"))
}

func TestStreamManager_DropsWhenFull(t *testing.T) {
	sm := NewStreamManager()
	ch, cancel := sm.Subscribe("s1")
	defer cancel()

	for i := 0; i < 20; i++ {
		sm.Broadcast("s1", "msg")
	}
	assert.Len(t, ch, 10)
}

func TestStreamManager_Close(t *testing.T) {
	sm := NewStreamManager()
	a, cancelA := sm.Subscribe("s1")
	b, cancelB := sm.Subscribe("s1")
	other, cancelOther := sm.Subscribe("s2")
	defer cancelOther()

	sm.Close("s1")
	_, open := <-a
	assert.False(t, open)
	_, open = <-b
	assert.False(t, open)
	assert.Equal(t, 0, sm.Subscribers("s1"))
	assert.Equal(t, 1, sm.Subscribers("s2"))
	assert.Empty(t, other)

	// A later subscription under the same ID is not touched by stale cancels.
	c, cancelC := sm.Subscribe("s1")
	defer cancelC()
	cancelA()
	cancelB()
	assert.Equal(t, 1, sm.Subscribers("s1"))
	sm.Broadcast("s1", "still here")
	assert.Equal(t, "still here", <-c)
}
