package sampler

import (
	"log/slog"
	"reflect"
	"runtime"
)

type destroyer interface{ Destroy() }

// RegisterWithGC automatically calls Destroy on a sampler object if it
// is garbage collected without having been destroyed. The finalizer runs
// on an arbitrary goroutine, so this is only safe with devices that
// tolerate calls from outside the context thread.
func RegisterWithGC[T destroyer](value T) T {
	if runtime.GOOS == "js" {
		// js values are garbage collected anyways, no need to
		// register the Finalizer
		return value
	}

	runtime.SetFinalizer(value, destroyNow[T])

	return value
}

func destroyNow[T destroyer](value T) {
	typ := reflect.TypeOf(value).String()
	slog.Debug("Destroying garbage collected sampler object", slog.String("type", typ))

	value.Destroy()
}
