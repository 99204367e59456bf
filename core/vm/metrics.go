package vm

import (
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/templatechain/nativecall/tracing"
)

var (
	dispatchSucceededCounter = metrics.NewRegisteredCounter("precompile/dispatch/succeeded", nil)
	dispatchFailedCounter    = metrics.NewRegisteredCounter("precompile/dispatch/failed", nil)
	shortInputCounter        = metrics.NewRegisteredCounter("precompile/rejected/shortinput", nil)
	unknownSelectorCounter   = metrics.NewRegisteredCounter("precompile/rejected/selector", nil)
	badArgumentCounter       = metrics.NewRegisteredCounter("precompile/rejected/argument", nil)
	rejectedCounter          = metrics.NewRegisteredCounter("precompile/rejected/total", nil)
)

// markDispatch records the outcome of one invocation.
func markDispatch(reason tracing.DispatchReason) {
	if reason.Rejected() {
		rejectedCounter.Inc(1)
	}
	switch reason {
	case tracing.DispatchSucceeded:
		dispatchSucceededCounter.Inc(1)
	case tracing.DispatchFailed:
		dispatchFailedCounter.Inc(1)
	case tracing.DispatchShortInput:
		shortInputCounter.Inc(1)
	case tracing.DispatchUnknownSelector:
		unknownSelectorCounter.Inc(1)
	case tracing.DispatchBadArgument:
		badArgumentCounter.Inc(1)
	}
}
