package favorite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	bus := NewBus()

	var first, second []ChangeEvent
	unsubscribeFirst := bus.Subscribe(func(e ChangeEvent) { first = append(first, e) })
	unsubscribeSecond := bus.Subscribe(func(e ChangeEvent) { second = append(second, e) })
	defer unsubscribeSecond()

	bus.Publish(ChangeEvent{Key: PrimaryKey, Value: "[]", Origin: "a"})
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)

	unsubscribeFirst()
	unsubscribeFirst()
	bus.Publish(ChangeEvent{Key: PrimaryKey, Value: "[]", Origin: "a"})
	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}
