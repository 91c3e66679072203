//go:build debug

package steering

import "fmt"

func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("steering: "+format, args...))
	}
}
