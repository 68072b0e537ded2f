package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalConnectEmitClose(t *testing.T) {
	var sig Signal[int]
	var got []int

	sub := sig.Connect(func(v int) { got = append(got, v) })
	sig.Connect(func(v int) { got = append(got, v*10) })
	require.Equal(t, 2, sig.Len())

	sig.Emit(3)
	assert.Equal(t, []int{3, 30}, got)

	sub.Close()
	sub.Close()
	assert.Equal(t, 1, sig.Len())

	got = nil
	sig.Emit(4)
	assert.Equal(t, []int{40}, got)
}

func TestSignalCloseDuringEmit(t *testing.T) {
	var sig Signal[struct{}]
	calls := 0
	var second *Subscription
	sig.Connect(func(struct{}) {
		calls++
		second.Close()
	})
	second = sig.Connect(func(struct{}) { calls += 100 })

	sig.Emit(struct{}{})
	assert.Equal(t, 1, calls, "listener closed mid-emit must not run")
	assert.Equal(t, 1, sig.Len())
}

