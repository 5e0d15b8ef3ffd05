package arraylist

import (
	"context"

	"go.llib.dev/arraylist/pkg/logging"
)

// ensureCapacity reallocates the owner's buffer when it has fewer than required slots.
// Bulk operations call it once with the final length of the whole batch.
func (l *ArrayList[T]) ensureCapacity(required int) {
	capacity := len(l.buf)
	if required <= capacity {
		return
	}
	c := l.getConfig()
	newCapacity := nextCapacity(c, capacity, required)
	buf := make([]T, newCapacity)
	copy(buf, l.buf[:l.size])
	l.buf = buf

	if lg := c.logger(); lg.Enabled(logging.LevelDebug) {
		lg.Debug(context.Background(), "arraylist buffer reallocated",
			logging.Field("capacity", newCapacity),
			logging.Field("previous_capacity", capacity),
			logging.Field("length", l.size))
	}
}

func nextCapacity(c Config, capacity, required int) int {
	newCapacity := max(required, capacity+c.GrowthIncrement)
	if capacity == 0 {
		newCapacity = max(newCapacity, c.InitialCapacity)
	}
	if 1 < c.GrowthFactor {
		newCapacity = max(newCapacity, int(float64(capacity)*c.GrowthFactor))
	}
	return newCapacity
}
