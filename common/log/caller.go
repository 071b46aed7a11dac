package log

import "runtime"

// set by debug builds
var callerPrettyfier func(frame *runtime.Frame) (function string, file string)
