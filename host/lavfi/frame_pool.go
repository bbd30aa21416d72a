// frame_pool.go implements a pool for reusing astiav.Frame objects.

package lavfi

import (
	"runtime"
	"sync"

	"github.com/asticode/go-astiav"
)

// ReuseFrames switches the output frame pool on and off. When disabled,
// released frames are dropped and their finalizer frees them.
var ReuseFrames = true

var framePool = sync.Pool{
	New: func() any {
		frame := astiav.AllocFrame()
		runtime.SetFinalizer(frame, func(frame *astiav.Frame) {
			frame.Free()
		})
		return frame
	},
}

func getFrame() *astiav.Frame {
	return framePool.Get().(*astiav.Frame)
}

// ReleaseFrame hands frames received from a Runner back to the pool.
func ReleaseFrame(frames ...*astiav.Frame) {
	if !ReuseFrames {
		return
	}
	for _, frame := range frames {
		frame.Unref()
		framePool.Put(frame)
	}
}
