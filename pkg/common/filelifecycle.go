package common

// FileLifecycle receives progress events while input is read or work is done.
type FileLifecycle struct {
	OnStart func(total int64)
	OnChunk func(n int64)
	OnEnd   func()
}

// ProgressFunc creates a FileLifecycle for a unit of work described by desc.
type ProgressFunc func(desc string, total int64) FileLifecycle
