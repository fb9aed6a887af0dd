package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_PublishNeverBlocks(t *testing.T) {
	n := NewNotifier()

	for i := 0; i < defaultEventBuffer*3; i++ {
		n.Publish(Event{Reason: ReasonUnauthorized})
	}

	assert.Len(t, n.Events(), defaultEventBuffer)
	assert.Equal(t, int64(defaultEventBuffer*2), n.Dropped())

	e := <-n.Events()
	assert.Equal(t, ReasonUnauthorized, e.Reason)
}
