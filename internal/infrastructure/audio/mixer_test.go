package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyunmoon/sidescroll/internal/domain/event"
)

func TestMixer_SafeBeforeInit(t *testing.T) {
	m := NewMixer(0.8)

	// No speaker is open in tests; everything must silently no-op.
	assert.NotPanics(t, func() {
		m.PlayEvents([]event.Event{
			{Kind: event.Jump},
			{Kind: event.Coin},
			{Kind: event.ScoreDelta}, // no cue mapped
		})
		m.Close()
	})
}
