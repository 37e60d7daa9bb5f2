package buffer

// FIFO is a byte-oriented ring buffer with grow-on-demand. It is not safe for
// concurrent use; see SharedFIFO for the synchronized variant.
//
// The buffer tracks head/tail indices and the current size over a contiguous
// backing slice, growing geometrically to fit writes and handling reads across
// wrap boundaries. The constructor-requested capacity is remembered and
// restored by Clear. A non-destructive read cursor (an offset from the head)
// serves Read and Seek; Extract consumes from the head and pulls the cursor
// back with it so the cursor keeps naming the same logical unread byte.
//
// Lifecycle flags are monotonic: Close stops writes but leaves buffered data
// readable until drained; SetError stops both directions immediately.
type FIFO struct {
	buf        []byte
	initialCap int
	head       int
	tail       int
	size       int
	readPos    int
	closed     bool
	errored    bool
}

// NewFIFO creates an open, empty FIFO with an optional initial capacity.
// Zero or negative capacity leaves the buffer unallocated until first write.
func NewFIFO(capacity int) *FIFO {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO{
		buf:        make([]byte, capacity),
		initialCap: capacity,
	}
}

// Clone returns a deep copy of the FIFO, preserving content, cursor position
// and lifecycle flags.
func (f *FIFO) Clone() *FIFO {
	clone := *f
	clone.buf = make([]byte, len(f.buf))
	copy(clone.buf, f.buf)
	return &clone
}

// Size returns the current number of bytes stored.
func (f *FIFO) Size() int {
	return f.size
}

// Capacity returns the number of slots in the backing storage.
func (f *FIFO) Capacity() int {
	return len(f.buf)
}

// AvailableBytes returns the count readable from the current cursor without
// blocking. An errored buffer has nothing readable, so it reports zero.
func (f *FIFO) AvailableBytes() int {
	if f.errored || f.readPos > f.size {
		return 0
	}
	return f.size - f.readPos
}

// Empty reports whether the buffer has no data.
func (f *FIFO) Empty() bool {
	return f.size == 0
}

// IsClosed reports whether the buffer is closed for further writes.
func (f *FIFO) IsClosed() bool {
	return f.closed
}

// IsWritable reports whether writes are accepted (not closed, not errored).
func (f *FIFO) IsWritable() bool {
	return !f.closed && !f.errored
}

// IsReadable reports whether reads can succeed (not errored).
func (f *FIFO) IsReadable() bool {
	return !f.errored
}

// EoF reports the end condition: errored, or closed with nothing left to read
// from the cursor.
func (f *FIFO) EoF() bool {
	return f.errored || (f.closed && f.AvailableBytes() == 0)
}

// Close marks the buffer closed for further writes. Idempotent; buffered data
// remains readable.
func (f *FIFO) Close() {
	f.closed = true
}

// SetError marks the buffer as erroneous, making it unreadable and
// unwritable. Idempotent.
func (f *FIFO) SetError() {
	f.errored = true
}

// Write appends bytes to the buffer, growing storage as needed. Returns false
// with no effect when the buffer is closed or errored, or when data is empty.
func (f *FIFO) Write(data []byte) bool {
	if f.closed || f.errored {
		return false
	}
	count := len(data)
	if count == 0 {
		return false
	}
	f.growToFit(f.size + count)
	capacity := len(f.buf)
	first := min(count, capacity-f.tail)
	copy(f.buf[f.tail:], data[:first])
	if second := count - first; second > 0 {
		copy(f.buf, data[first:])
	}
	f.tail = (f.tail + count) % capacity
	f.size += count
	return true
}

// WriteString is a convenience write from a string.
func (f *FIFO) WriteString(data string) bool {
	return f.Write([]byte(data))
}

// Read performs a non-destructive read of count bytes starting at the current
// cursor, advancing the cursor by the bytes returned. A count of zero reads
// everything from the cursor to the end (empty success when the cursor is
// already at the end). Fails with an InsufficientDataError when the buffer is
// errored or fewer than count bytes are available.
func (f *FIFO) Read(count int) ([]byte, error) {
	if f.errored {
		return nil, insufficient("buffer is in error state")
	}
	if count < 0 {
		count = 0
	}
	available := f.AvailableBytes()
	if count > 0 && count > available {
		return nil, insufficient("not enough bytes to read")
	}

	toRead := count
	if count == 0 {
		toRead = available
	}
	out := make([]byte, toRead)
	if toRead == 0 {
		return out, nil
	}

	capacity := len(f.buf)
	pos := (f.head + f.readPos) % capacity
	first := min(toRead, capacity-pos)
	copy(out, f.buf[pos:pos+first])
	if second := toRead - first; second > 0 {
		copy(out[first:], f.buf[:second])
	}

	f.readPos += toRead
	return out, nil
}

// Extract performs a destructive read of count bytes from the front of the
// buffer, regardless of the cursor. A count of zero drains everything. The
// cursor is pulled back so it keeps naming the same logical unread byte:
// cursor' = max(0, cursor-count). Fails with an InsufficientDataError when
// the buffer is errored or holds fewer than count bytes.
func (f *FIFO) Extract(count int) ([]byte, error) {
	if f.errored {
		return nil, insufficient("buffer is in error state")
	}
	if count < 0 {
		count = 0
	}
	if count > 0 && count > f.size {
		return nil, insufficient("not enough bytes to extract")
	}

	toRead := count
	if count == 0 {
		toRead = f.size
	}
	if toRead == 0 {
		return []byte{}, nil
	}

	// Zero-copy fast path: entire content contiguous from head == 0
	if toRead == f.size && f.head == 0 {
		out := f.buf[:f.size:f.size]
		f.buf = nil
		f.head, f.tail, f.size = 0, 0, 0
		f.readPos = 0
		return out, nil
	}

	out := make([]byte, toRead)
	capacity := len(f.buf)
	first := min(toRead, capacity-f.head)
	copy(out, f.buf[f.head:f.head+first])
	if second := toRead - first; second > 0 {
		copy(out[first:], f.buf[:second])
	}
	f.head = (f.head + toRead) % capacity
	f.size -= toRead

	if f.readPos >= toRead {
		f.readPos -= toRead
	} else {
		f.readPos = 0
	}
	return out, nil
}

// Seek moves the read cursor. SeekAbsolute clamps offset into [0, Size];
// SeekRelative clamps cursor+offset into the same range. Negative offsets are
// meaningful only in relative mode. Seek never fails and never touches
// stored data.
func (f *FIFO) Seek(offset int64, mode Position) {
	size := int64(f.size)
	var pos int64
	switch mode {
	case SeekAbsolute:
		pos = offset
	case SeekRelative:
		pos = int64(f.readPos) + offset
	default:
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > size {
		pos = size
	}
	f.readPos = int(pos)
}

// Clear empties the storage, restores the constructor-requested capacity and
// resets the cursor. Lifecycle flags are preserved: Clear is a storage
// operation, closed/errored are monotonic.
func (f *FIFO) Clear() {
	f.buf = make([]byte, f.initialCap)
	f.head, f.tail, f.size = 0, 0, 0
	f.readPos = 0
}

// Clean removes the bytes already consumed by the cursor ([0, cursor)) from
// the front of the buffer; the cursor becomes 0 and unread bytes are
// preserved.
func (f *FIFO) Clean() {
	if f.readPos == 0 {
		return
	}
	n := min(f.readPos, f.size)
	if n > 0 {
		f.head = (f.head + n) % len(f.buf)
		f.size -= n
	}
	f.readPos = 0
}

// Reserve grows storage to at least newCapacity, relinearizing content to the
// start of the new slice. A capacity at or below the current one is a no-op.
// Pure optimization hint; never required for correctness.
func (f *FIFO) Reserve(newCapacity int) {
	if newCapacity <= len(f.buf) {
		return
	}
	dst := make([]byte, newCapacity)
	f.relinearizeInto(dst)
	f.buf = dst
	f.head = 0
	f.tail = f.size
}

// growToFit grows capacity geometrically (doubling from 64) to fit required
// bytes.
func (f *FIFO) growToFit(required int) {
	if required <= len(f.buf) {
		return
	}
	newCap := len(f.buf)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < required {
		newCap *= 2
	}
	f.Reserve(newCap)
}

// relinearizeInto copies the logical contents into dst starting at index 0.
func (f *FIFO) relinearizeInto(dst []byte) {
	if f.size == 0 {
		return
	}
	capacity := len(f.buf)
	first := min(f.size, capacity-f.head)
	copy(dst, f.buf[f.head:f.head+first])
	if second := f.size - first; second > 0 {
		copy(dst[first:], f.buf[:second])
	}
}
