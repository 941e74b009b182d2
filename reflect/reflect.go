package reflect

import (
	"runtime"
	"strings"
)

// FunctionName reports the name of the calling function for log messages.
func FunctionName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}

	return name
}
