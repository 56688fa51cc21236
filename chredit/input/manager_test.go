package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestManager_Debouncing(t *testing.T) {
	tests := []struct {
		name           string
		eventType      event.Type
		timeBetween    time.Duration
		expectDebounce bool
	}{
		{
			name:           "rapid press - should debounce",
			eventType:      event.Press,
			timeBetween:    100 * time.Millisecond,
			expectDebounce: true,
		},
		{
			name:           "slow press - should not debounce",
			eventType:      event.Press,
			timeBetween:    400 * time.Millisecond,
			expectDebounce: false,
		},
		{
			name:           "rapid release - should debounce",
			eventType:      event.Release,
			timeBetween:    10 * time.Millisecond,
			expectDebounce: true,
		},
		{
			name:           "Hold event type - should not debounce",
			eventType:      event.Hold,
			timeBetween:    1 * time.Millisecond,
			expectDebounce: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			m := NewManager()
			m.now = clock.now

			calls := 0
			m.On(action.SaveCharacter, tt.eventType, func() { calls++ })

			assert.True(t, m.Trigger(action.SaveCharacter, tt.eventType), "first event is always handled")
			clock.advance(tt.timeBetween)
			handled := m.Trigger(action.SaveCharacter, tt.eventType)

			assert.Equal(t, !tt.expectDebounce, handled)
			if tt.expectDebounce {
				assert.Equal(t, 1, calls)
			} else {
				assert.Equal(t, 2, calls)
			}
		})
	}
}

func TestManager_DebounceIsPerAction(t *testing.T) {
	m := NewManager()
	saved, loaded := 0, 0
	m.On(action.SaveCharacter, event.Press, func() { saved++ })
	m.On(action.LoadCharacter, event.Press, func() { loaded++ })

	m.Trigger(action.SaveCharacter, event.Press)
	m.Trigger(action.LoadCharacter, event.Press)

	assert.Equal(t, 1, saved)
	assert.Equal(t, 1, loaded)
}

func TestManager_MultipleCallbacks(t *testing.T) {
	m := NewManager()
	order := []string{}
	m.On(action.EditorQuit, event.Press, func() { order = append(order, "first") })
	m.On(action.EditorQuit, event.Press, func() { order = append(order, "second") })

	m.Trigger(action.EditorQuit, event.Press)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestManager_UnregisteredAction(t *testing.T) {
	m := NewManager()
	assert.True(t, m.Trigger(action.ZoomIn, event.Press))
}

func TestDefaultKeyMap(t *testing.T) {
	tests := []struct {
		key  string
		want action.Action
	}{
		{"s", action.SaveCharacter},
		{"z", action.SaveSamples},
		{"l", action.LoadCharacter},
		{"x", action.LoadSamples},
		{"1", action.ModeCharacter},
		{"2", action.ModeNametable},
		{"3", action.ModeAttributeTable},
		{"0", action.ZoomIn},
		{"9", action.ZoomOut},
		{"Escape", action.EditorQuit},
	}

	for _, tt := range tests {
		act, ok := GetDefaultMapping(tt.key)
		assert.True(t, ok, tt.key)
		assert.Equal(t, tt.want, act, tt.key)
	}

	_, ok := GetDefaultMapping(DragKey)
	assert.False(t, ok, "drag key is a held state, not an action")
}
