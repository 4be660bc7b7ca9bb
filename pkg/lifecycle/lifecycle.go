package lifecycle

import (
	"github.com/schollz/progressbar/v3"

	"github.com/guilt/gsm/pkg/common"
)

// DefaultLifecycle is a no-op lifecycle.
var DefaultLifecycle = common.FileLifecycle{
	OnStart: func(total int64) {},
	OnChunk: func(n int64) {},
	OnEnd:   func() {},
}

// MakeDefaultLifecycle returns a no-op lifecycle matching the ProgressFunc signature.
func MakeDefaultLifecycle(desc string, total int64) common.FileLifecycle {
	return DefaultLifecycle
}

// MakeProgressBars returns a lifecycle that draws a byte progress bar.
func MakeProgressBars(desc string, total int64) common.FileLifecycle {
	bar := progressbar.DefaultBytes(total, desc)
	return barLifecycle(bar)
}

// MakeCountProgressBars returns a lifecycle that draws a progress bar counting operations.
func MakeCountProgressBars(desc string, total int64) common.FileLifecycle {
	bar := progressbar.Default(total, desc)
	return barLifecycle(bar)
}

func barLifecycle(bar *progressbar.ProgressBar) common.FileLifecycle {
	return common.FileLifecycle{
		OnStart: func(total int64) {},
		OnChunk: func(n int64) {
			bar.Add64(n)
		},
		OnEnd: func() {
			bar.Close()
		},
	}
}
