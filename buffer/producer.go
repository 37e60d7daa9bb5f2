package buffer

// Producer is the write-only capability handle over a SharedFIFO. Copies are
// cheap and all refer to the same buffer, so multiple goroutines can hold
// producers for one channel.
//
// The zero value is not usable; construct with NewProducer, NewProducerFor
// or NewProducerFrom.
type Producer struct {
	buf *SharedFIFO
}

// NewProducer creates a Producer owning a fresh SharedFIFO. Options are
// passed through to NewShared; with no options the error is always nil.
func NewProducer(options ...Option) (Producer, error) {
	buf, err := NewShared(options...)
	if err != nil {
		return Producer{}, err
	}
	return Producer{buf: buf}, nil
}

// NewProducerFor creates a Producer over an existing SharedFIFO.
func NewProducerFor(buf *SharedFIFO) Producer {
	return Producer{buf: buf}
}

// NewProducerFrom creates a Producer adopting the Consumer's buffer, making
// the two handles the write and read halves of the same channel.
func NewProducerFrom(consumer Consumer) Producer {
	return Producer{buf: consumer.buf}
}

// Write appends bytes to the buffer and wakes waiting consumers. Returns
// false when the buffer is closed or errored, or when data is empty.
func (p Producer) Write(data []byte) bool {
	return p.buf.Write(data)
}

// WriteString appends the bytes of a string.
func (p Producer) WriteString(data string) bool {
	return p.buf.WriteString(data)
}

// Close marks the buffer closed for further writes and wakes waiting
// consumers. Buffered data remains readable until drained.
func (p Producer) Close() {
	p.buf.Close()
}

// SetError marks the buffer erroneous, making it unreadable and unwritable,
// and wakes all waiters.
func (p Producer) SetError() {
	p.buf.SetError()
}

// IsWritable reports whether the buffer still accepts writes.
func (p Producer) IsWritable() bool {
	return p.buf.IsWritable()
}

// Consumer spawns a read-only handle sharing this Producer's buffer.
func (p Producer) Consumer() Consumer {
	return Consumer{buf: p.buf}
}
