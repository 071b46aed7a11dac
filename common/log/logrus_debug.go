//go:build debug

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

func init() {
	basePath, _ := filepath.Abs(".")
	callerPrettyfier = func(frame *runtime.Frame) (function string, file string) {
		file = frame.File + ":" + strconv.Itoa(frame.Line)
		if strings.HasPrefix(file, basePath) {
			file = file[len(basePath)+1:]
		}

		file = " " + file
		return
	}
}
