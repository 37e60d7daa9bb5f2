package buffer

// Consumer is the read-only capability handle over a SharedFIFO. Consumers
// cannot be constructed by user code; they are obtained from
// Producer.Consumer (or handed out by a pipeline run). Copies are cheap, all
// refer to the same buffer, and therefore all see the same read cursor.
type Consumer struct {
	buf *SharedFIFO
}

// Read performs a non-destructive read of count bytes from the shared
// cursor, blocking while count > 0 until enough bytes are available or the
// buffer becomes closed or errored. See SharedFIFO.Read for the full
// contract.
func (c Consumer) Read(count int) ([]byte, error) {
	return c.buf.Read(count)
}

// Extract performs a destructive read of count bytes from the front of the
// buffer, blocking while count > 0 until enough bytes are stored or the
// buffer becomes closed or errored. See SharedFIFO.Extract.
func (c Consumer) Extract(count int) ([]byte, error) {
	return c.buf.Extract(count)
}

// Seek moves the shared read cursor. Affects every consumer of this buffer.
func (c Consumer) Seek(offset int64, mode Position) {
	c.buf.Seek(offset, mode)
}

// Clear empties the buffer. Affects every handle sharing it.
func (c Consumer) Clear() {
	c.buf.Clear()
}

// AvailableBytes returns the count readable from the cursor without blocking.
func (c Consumer) AvailableBytes() int {
	return c.buf.AvailableBytes()
}

// Size returns the total number of bytes stored.
func (c Consumer) Size() int {
	return c.buf.Size()
}

// Empty reports whether the buffer has no data.
func (c Consumer) Empty() bool {
	return c.buf.Empty()
}

// IsReadable reports whether reads can succeed (the buffer is not errored).
func (c Consumer) IsReadable() bool {
	return c.buf.IsReadable()
}

// IsWritable reports whether more data can still arrive. A consumer cannot
// write, but knowing whether the producer side is done is how stages decide
// to finish.
func (c Consumer) IsWritable() bool {
	return c.buf.IsWritable()
}

// EoF reports the end condition: errored, or closed with nothing left to
// read from the cursor.
func (c Consumer) EoF() bool {
	return c.buf.EoF()
}
