package ffi

import (
	"sync"
	"sync/atomic"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
)

// Handle is the opaque, pointer-sized value a host holds for a Logger.
// Zero is never issued.
type Handle uintptr

var (
	handles    sync.Map // Handle -> *logging.Logger
	nextHandle atomic.Uintptr
)

func register(logger *logging.Logger) Handle {
	h := Handle(nextHandle.Add(1))
	handles.Store(h, logger)

	return h
}

func lookup(h Handle) optional.Option[*logging.Logger] {
	v, ok := handles.Load(h)
	if !ok {
		return optional.None[*logging.Logger]()
	}

	return optional.Some(v.(*logging.Logger))
}

func release(h Handle) optional.Option[*logging.Logger] {
	v, ok := handles.LoadAndDelete(h)
	if !ok {
		return optional.None[*logging.Logger]()
	}

	return optional.Some(v.(*logging.Logger))
}
