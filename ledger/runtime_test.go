package ledger

import (
	"math"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(addr string) AccountID {
	return HashedAddressMapping{}.IntoAccountID(common.HexToAddress(addr))
}

func TestDoSomethingStoresValue(t *testing.T) {
	rt := NewRuntime(DefaultConfig)
	who := testAccount("0x1000000000000000000000000000000000000001")

	info, err := rt.Dispatch(TemplateDoSomething{Something: 42}, Signed(who))
	require.NoError(t, err)
	assert.Equal(t, doSomethingWeight, info.ActualWeight)
	assert.True(t, info.PaysFee)

	v, ok := rt.Something()
	require.True(t, ok)
	assert.Equal(t, uint32(42), v)

	events := rt.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "SomethingStored", events[0].Name)
	assert.Equal(t, "42", events[0].Fields["something"])
	assert.Equal(t, who.String(), events[0].Fields["who"])
}

func TestDoSomethingRequiresSigned(t *testing.T) {
	rt := NewRuntime(DefaultConfig)

	for _, origin := range []Origin{{}, Origin{Kind: OriginRoot}} {
		_, err := rt.Dispatch(TemplateDoSomething{Something: 7}, origin)
		assert.ErrorIs(t, err, ErrBadOrigin, "origin %v", origin)
	}
	_, ok := rt.Something()
	assert.False(t, ok)
	assert.Empty(t, rt.Events())
}

func TestCauseError(t *testing.T) {
	rt := NewRuntime(DefaultConfig)
	who := Signed(testAccount("0x2000000000000000000000000000000000000002"))

	_, err := rt.Dispatch(TemplateCauseError{}, who)
	assert.ErrorIs(t, err, ErrNoneValue)

	_, err = rt.Dispatch(TemplateDoSomething{Something: 1}, who)
	require.NoError(t, err)
	_, err = rt.Dispatch(TemplateCauseError{}, who)
	require.NoError(t, err)
	v, _ := rt.Something()
	assert.Equal(t, uint32(2), v)

	_, err = rt.Dispatch(TemplateDoSomething{Something: math.MaxUint32}, who)
	require.NoError(t, err)
	_, err = rt.Dispatch(TemplateCauseError{}, who)
	assert.ErrorIs(t, err, ErrStorageOverflow)
	v, _ = rt.Something()
	assert.Equal(t, uint32(math.MaxUint32), v)
}

type unknownCall struct{}

func (unknownCall) Pallet() string { return "Unknown" }
func (unknownCall) Name() string   { return "noop" }
func (unknownCall) isCall()        {}

func TestDispatchUnknownCall(t *testing.T) {
	rt := NewRuntime(DefaultConfig)
	_, err := rt.Dispatch(unknownCall{}, Origin{Kind: OriginRoot})
	assert.ErrorIs(t, err, ErrUnknownCall)
}

func TestStateRevertDropsPending(t *testing.T) {
	s := NewState()
	s.put(somethingKey, encodeU32(5))
	s.depositEvent(Event{Pallet: templatePallet, Name: "SomethingStored"})
	require.True(t, s.hasPending())

	v, ok := s.get(somethingKey)
	require.True(t, ok)
	assert.Equal(t, uint32(5), decodeU32(v))

	s.revert()
	assert.False(t, s.hasPending())
	_, ok = s.Get(somethingKey)
	assert.False(t, ok)
	assert.Empty(t, s.Events())

	s.put(somethingKey, encodeU32(6))
	s.commit()
	raw, ok := s.Get(somethingKey)
	require.True(t, ok)
	assert.Equal(t, uint32(6), decodeU32(raw))
}

// TestRuntimeConcurrentDispatch ensures that concurrent dispatches are
// race-free and each commits its own event.
func TestRuntimeConcurrentDispatch(t *testing.T) {
	const n = 64
	rt := NewRuntime(DefaultConfig)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			var who AccountID
			who[0] = byte(i)
			if _, err := rt.Dispatch(TemplateDoSomething{Something: uint32(i)}, Signed(who)); err != nil {
				t.Errorf("dispatch %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, rt.Events(), n)
}
