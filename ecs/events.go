package ecs

// DefaultChannelCapacity is the ring size used by NewChannel when capacity is
// not positive.
const DefaultChannelCapacity = 64

// ReaderID is a cursor registered on a Channel.
type ReaderID int

// Channel is a bounded broadcast log. Every registered reader sees each
// published item once, in publication order. A reader that falls more than
// the capacity behind silently skips the overwritten items.
type Channel[T any] struct {
	buf     []T
	written uint64
	cursors []uint64
}

func NewChannel[T any](capacity int) *Channel[T] {
	if capacity <= 0 {
		capacity = DefaultChannelCapacity
	}
	return &Channel[T]{buf: make([]T, capacity)}
}

// Register returns a reader that will see items published from now on.
func (c *Channel[T]) Register() ReaderID {
	c.cursors = append(c.cursors, c.written)
	return ReaderID(len(c.cursors) - 1)
}

// Publish appends an item, overwriting the oldest once the ring is full.
func (c *Channel[T]) Publish(item T) {
	if c == nil {
		return
	}
	c.buf[c.written%uint64(len(c.buf))] = item
	c.written++
}

// Read returns the items published since the reader's last read and advances
// the reader.
func (c *Channel[T]) Read(r ReaderID) []T {
	if c == nil || int(r) < 0 || int(r) >= len(c.cursors) {
		return nil
	}
	cursor := c.cursors[r]
	capacity := uint64(len(c.buf))
	if c.written-cursor > capacity {
		cursor = c.written - capacity
	}
	if cursor == c.written {
		return nil
	}
	out := make([]T, 0, c.written-cursor)
	for i := cursor; i < c.written; i++ {
		out = append(out, c.buf[i%capacity])
	}
	c.cursors[r] = c.written
	return out
}

// Discard moves every reader past the items published so far.
func (c *Channel[T]) Discard() {
	if c == nil {
		return
	}
	for i := range c.cursors {
		c.cursors[i] = c.written
	}
}

// Capacity returns the ring size.
func (c *Channel[T]) Capacity() int {
	return len(c.buf)
}
