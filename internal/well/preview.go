package well

import "stackcore/internal/piece"

// PreviewQueue is a fixed-capacity ring buffer of upcoming pieces. After
// initialization it is always full.
type PreviewQueue struct {
	buf  []piece.Id
	head int
}

// NewPreviewQueue creates a queue of the given capacity, filling every slot
// by calling gen() once per slot.
func NewPreviewQueue(capacity int, gen func() piece.Id) *PreviewQueue {
	q := &PreviewQueue{buf: make([]piece.Id, capacity)}
	for i := range q.buf {
		q.buf[i] = gen()
	}
	return q
}

// Take returns the head piece, writes next into that now-vacated slot, and
// advances the head.
func (q *PreviewQueue) Take(next piece.Id) piece.Id {
	taken := q.buf[q.head]
	q.buf[q.head] = next
	q.head = (q.head + 1) % len(q.buf)
	return taken
}

// Peek reads the i-th upcoming piece (0 = next) without mutating the queue.
func (q *PreviewQueue) Peek(i int) piece.Id {
	return q.buf[(q.head+i)%len(q.buf)]
}

// Len returns the queue's fixed capacity.
func (q *PreviewQueue) Len() int {
	return len(q.buf)
}
