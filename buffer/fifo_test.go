package buffer

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/bytestream/errors"
)

func TestFIFOInitialState(t *testing.T) {
	f := NewFIFO(0)

	assert.Equal(t, 0, f.Size())
	assert.Equal(t, 0, f.AvailableBytes())
	assert.True(t, f.Empty())
	assert.False(t, f.IsClosed())
	assert.True(t, f.IsWritable())
	assert.True(t, f.IsReadable())
	assert.False(t, f.EoF())
}

func TestFIFOInitialCapacity(t *testing.T) {
	f := NewFIFO(128)
	assert.Equal(t, 128, f.Capacity())
	assert.Equal(t, 0, f.Size())

	// Negative capacity behaves like zero
	assert.Equal(t, 0, NewFIFO(-5).Capacity())
}

func TestFIFOWriteAndSize(t *testing.T) {
	f := NewFIFO(0)

	require.True(t, f.Write([]byte("hello")))
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, 5, f.AvailableBytes())

	require.True(t, f.WriteString(" world"))
	assert.Equal(t, 11, f.Size())

	// Empty write is rejected with no effect
	assert.False(t, f.Write(nil))
	assert.False(t, f.Write([]byte{}))
	assert.Equal(t, 11, f.Size())
}

func TestFIFOWriteAfterClose(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("data")))

	f.Close()
	assert.False(t, f.Write([]byte("more")))
	assert.Equal(t, 4, f.Size())
	assert.True(t, f.IsClosed())
	assert.False(t, f.IsWritable())
	assert.True(t, f.IsReadable()) // closed is still readable until drained
}

func TestFIFORead(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("hello world")))

	out, err := f.Read(5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
	assert.Equal(t, 6, f.AvailableBytes())
	assert.Equal(t, 11, f.Size()) // non-destructive

	// Zero count reads everything left from the cursor
	out, err = f.Read(0)
	require.NoError(t, err)
	assert.Equal(t, []byte(" world"), out)
	assert.Equal(t, 0, f.AvailableBytes())

	// Cursor at end: Read(0) is an empty success, not an error
	out, err = f.Read(0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFIFOReadInsufficient(t *testing.T) {
	f := NewFIFO(0)

	_, err := f.Read(1)
	require.Error(t, err)
	var ide *InsufficientDataError
	assert.True(t, stderrors.As(err, &ide))
	assert.ErrorIs(t, err, cerrors.ErrInsufficientData)

	require.True(t, f.Write([]byte("abc")))
	_, err = f.Read(4)
	require.Error(t, err)

	// Exact count still succeeds
	out, err := f.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestFIFOExtract(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("hello world")))

	out, err := f.Extract(5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
	assert.Equal(t, 6, f.Size()) // destructive

	// Zero count drains everything
	out, err = f.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, []byte(" world"), out)
	assert.True(t, f.Empty())

	// Draining an empty buffer is an empty success
	out, err = f.Extract(0)
	require.NoError(t, err)
	assert.Empty(t, out)

	// A positive count on an empty buffer fails
	_, err = f.Extract(1)
	require.Error(t, err)
}

func TestFIFOExtractAdjustsCursor(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("abcdefgh")))

	// Cursor at 4; extracting 2 from the front keeps it naming byte 'e'
	_, err := f.Read(4)
	require.NoError(t, err)

	out, err := f.Extract(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), out)

	next, err := f.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("e"), next)

	// Extracting past the cursor clamps it to zero
	_, err = f.Extract(5)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Size())
	next, err = f.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("h"), next)
}

func TestFIFOWrapAround(t *testing.T) {
	// Force wrap: small initial capacity, interleaved writes and extracts
	f := NewFIFO(8)
	require.True(t, f.Write([]byte("abcdef")))

	out, err := f.Extract(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), out)

	// head is now at 4; this write wraps around the end of the storage
	require.True(t, f.Write([]byte("ghijk")))
	assert.Equal(t, 7, f.Size())

	out, err = f.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("efghijk"), out)
}

func TestFIFOGrowPreservesContent(t *testing.T) {
	f := NewFIFO(4)
	require.True(t, f.Write([]byte("ab")))
	_, err := f.Extract(1)
	require.NoError(t, err)

	// Next write exceeds capacity and relinearizes
	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.True(t, f.Write(payload))
	assert.Equal(t, 101, f.Size())

	out, err := f.Extract(0)
	require.NoError(t, err)
	require.Len(t, out, 101)
	assert.Equal(t, byte('b'), out[0])
	assert.Equal(t, payload, out[1:])
}

func TestFIFOSeek(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("0123456789")))

	f.Seek(4, SeekAbsolute)
	out, err := f.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("45"), out)

	f.Seek(-3, SeekRelative)
	out, err = f.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("34"), out)

	// Clamped high and low
	f.Seek(100, SeekAbsolute)
	assert.Equal(t, 0, f.AvailableBytes())
	f.Seek(-100, SeekRelative)
	assert.Equal(t, 10, f.AvailableBytes())

	// Seek to the end then Read(0) yields nothing
	f.Seek(int64(f.Size()), SeekAbsolute)
	out, err = f.Read(0)
	require.NoError(t, err)
	assert.Empty(t, out)

	// Full re-read from the start
	f.Seek(0, SeekAbsolute)
	out, err = f.Read(f.Size())
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), out)
}

func TestFIFOClear(t *testing.T) {
	f := NewFIFO(16)
	require.True(t, f.Write([]byte("payload")))
	_, err := f.Read(3)
	require.NoError(t, err)

	f.Close()
	f.Clear()

	assert.True(t, f.Empty())
	assert.Equal(t, 0, f.AvailableBytes())
	assert.Equal(t, 16, f.Capacity()) // initial capacity restored
	assert.True(t, f.IsClosed())      // lifecycle flags survive Clear
	assert.False(t, f.Write([]byte("x")))
}

func TestFIFOClean(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("abcdefgh")))

	_, err := f.Read(3)
	require.NoError(t, err)

	f.Clean()
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, 5, f.AvailableBytes())

	out, err := f.Read(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("defgh"), out)

	// Clean with cursor at zero is a no-op
	before := f.Size()
	f.Seek(0, SeekAbsolute)
	f.Clean()
	assert.Equal(t, before, f.Size())
}

func TestFIFOSetError(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("data")))

	f.SetError()

	assert.False(t, f.IsReadable())
	assert.False(t, f.IsWritable())
	assert.True(t, f.EoF())
	assert.Equal(t, 0, f.AvailableBytes())

	assert.False(t, f.Write([]byte("more")))

	_, err := f.Read(1)
	assert.ErrorIs(t, err, cerrors.ErrInsufficientData)
	_, err = f.Extract(1)
	assert.ErrorIs(t, err, cerrors.ErrInsufficientData)

	// Error after close stays errored
	g := NewFIFO(0)
	g.Close()
	g.SetError()
	assert.False(t, g.IsReadable())
}

func TestFIFOEoF(t *testing.T) {
	f := NewFIFO(0)
	assert.False(t, f.EoF())

	require.True(t, f.Write([]byte("ab")))
	f.Close()
	assert.False(t, f.EoF()) // closed but not drained

	_, err := f.Read(2)
	require.NoError(t, err)
	assert.True(t, f.EoF())
}

func TestFIFOReserve(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("abc")))

	f.Reserve(256)
	assert.Equal(t, 256, f.Capacity())

	// Shrinking is a no-op
	f.Reserve(8)
	assert.Equal(t, 256, f.Capacity())

	out, err := f.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestFIFOPartitionRoundTrip(t *testing.T) {
	// Writing b1 then b2 and extracting len(b) yields b, for any partition
	full := []byte("the quick brown fox jumps over the lazy dog")
	for cut := 0; cut <= len(full); cut++ {
		f := NewFIFO(0)
		if cut > 0 {
			require.True(t, f.Write(full[:cut]))
		}
		if cut < len(full) {
			require.True(t, f.Write(full[cut:]))
		}

		out, err := f.Extract(len(full))
		require.NoError(t, err)
		assert.Equal(t, full, out, "cut at %d", cut)
	}
}

func TestFIFOClone(t *testing.T) {
	f := NewFIFO(0)
	require.True(t, f.Write([]byte("shared past")))
	_, err := f.Read(6)
	require.NoError(t, err)
	f.Close()

	clone := f.Clone()
	assert.Equal(t, f.Size(), clone.Size())
	assert.Equal(t, f.AvailableBytes(), clone.AvailableBytes())
	assert.True(t, clone.IsClosed())

	// Mutating the clone leaves the original untouched
	_, err = clone.Extract(0)
	require.NoError(t, err)
	assert.True(t, clone.Empty())
	assert.Equal(t, 11, f.Size())
}

func TestFIFOReadThenExtractMatchesFreshExtract(t *testing.T) {
	content := []byte("interchangeable observation")

	reader := NewFIFO(0)
	require.True(t, reader.Write(content))
	_, err := reader.Read(10)
	require.NoError(t, err)
	reader.Seek(0, SeekAbsolute)
	got, err := reader.Extract(0)
	require.NoError(t, err)

	fresh := NewFIFO(0)
	require.True(t, fresh.Write(content))
	want, err := fresh.Extract(0)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}
