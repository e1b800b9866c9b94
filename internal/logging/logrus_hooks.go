package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// maximumCallerDepth limits how far up the stack ContextHook looks for the caller
const maximumCallerDepth = 25

// ContextHook will add go source information (file, line, func) of the code which logged the entry
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack, skipping logrus and this hook, and records the first frame
// outside of them.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, maximumCallerDepth)
	depth := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:depth])

	for {
		f, more := frames.Next()
		if !strings.Contains(f.Function, "sirupsen/logrus") && !strings.HasSuffix(f.Function, "ContextHook.Fire") {
			entry.Data["file"] = path.Base(f.File)
			entry.Data["line"] = f.Line
			entry.Data["func"] = path.Base(f.Function)
			break
		}
		if !more {
			break
		}
	}

	return nil
}
