package orderlock_test

import (
	"sync"
	"testing"
	"time"

	"ordernotify/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := orderlock.NewKeyedMutex()

	var order []int
	release := km.Acquire("ORD-1")

	done := make(chan struct{})
	go func() {
		r := km.Acquire("ORD-1")
		order = append(order, 2)
		r()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	order = append(order, 1)
	release()
	<-done

	assert.Equal(t, []int{1, 2}, order)
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := orderlock.NewKeyedMutex()

	release := km.Acquire("ORD-1")
	defer release()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r := km.Acquire("ORD-2")
		r()
	}()

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(time.Second):
		t.Fatal("acquire on a different key should not block")
	}
}

func TestKeyedMutex_TryAcquire(t *testing.T) {
	km := orderlock.NewKeyedMutex()

	release := km.Acquire("ORD-1")
	assert.True(t, km.InFlight("ORD-1"))

	_, ok := km.TryAcquire("ORD-1")
	assert.False(t, ok, "in-flight order must not be acquirable")

	release()
	assert.False(t, km.InFlight("ORD-1"))

	r, ok := km.TryAcquire("ORD-1")
	require.True(t, ok)
	assert.True(t, km.InFlight("ORD-1"))
	r()
}
