package buffer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerConsumerBasic(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	require.True(t, prod.WriteString("hello"))
	assert.Equal(t, 5, cons.Size())
	assert.Equal(t, 5, cons.AvailableBytes())
	assert.False(t, cons.Empty())

	out, err := cons.Read(5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestProducerCopiesShareBuffer(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)

	copy1 := prod
	copy2 := prod

	require.True(t, copy1.WriteString("ab"))
	require.True(t, copy2.WriteString("cd"))

	out, err := prod.Consumer().Extract(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), out)
}

func TestConsumersShareCursor(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	require.True(t, prod.WriteString("abcdef"))

	c1 := prod.Consumer()
	c2 := prod.Consumer()

	out, err := c1.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	// c2 sees the cursor c1 advanced
	out, err = c2.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("def"), out)

	// Seek through one handle moves the cursor for both
	c1.Seek(0, SeekAbsolute)
	assert.Equal(t, 6, c2.AvailableBytes())
}

func TestProducerFromConsumer(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	// The adopted producer is the write half of the same channel
	adopted := NewProducerFrom(cons)
	require.True(t, adopted.WriteString("via adopted"))

	out, err := cons.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("via adopted"), out)

	adopted.Close()
	assert.False(t, prod.IsWritable())
}

func TestProducerForSharedFIFO(t *testing.T) {
	s, err := NewShared(WithCapacity(8))
	require.NoError(t, err)

	prod := NewProducerFor(s)
	require.True(t, prod.WriteString("direct"))
	assert.Equal(t, 6, s.Size())
}

func TestProducerCloseSemantics(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	require.True(t, prod.WriteString("left"))
	prod.Close()
	prod.Close() // idempotent

	assert.False(t, prod.IsWritable())
	assert.False(t, prod.WriteString("rejected"))

	// Consumer drains buffered data, then sees EoF
	assert.False(t, cons.EoF())
	out, err := cons.Read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("left"), out)
	assert.True(t, cons.EoF())
}

func TestProducerSetErrorSemantics(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	require.True(t, prod.WriteString("doomed"))
	prod.SetError()

	assert.False(t, prod.IsWritable())
	assert.False(t, cons.IsReadable())
	assert.False(t, cons.IsWritable())
	assert.True(t, cons.EoF())
	assert.Equal(t, 0, cons.AvailableBytes())

	_, err = cons.Read(1)
	assert.Error(t, err)
	_, err = cons.Extract(1)
	assert.Error(t, err)
}

func TestConsumerClear(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	require.True(t, prod.WriteString("stale"))
	cons.Clear()
	assert.True(t, cons.Empty())
	assert.True(t, prod.IsWritable())
}

func TestProducerConsumerAcrossGoroutines(t *testing.T) {
	prod, err := NewProducer()
	require.NoError(t, err)
	cons := prod.Consumer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			prod.Write([]byte{byte(i)})
			if i%10 == 0 {
				time.Sleep(time.Millisecond)
			}
		}
		prod.Close()
	}()

	collected := make([]byte, 0, 100)
	for {
		data, err := cons.Extract(10)
		require.NoError(t, err)
		if len(data) == 0 {
			break
		}
		collected = append(collected, data...)
	}
	wg.Wait()

	require.Len(t, collected, 100)
	for i, b := range collected {
		assert.Equal(t, byte(i), b)
	}
}
