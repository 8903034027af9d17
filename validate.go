// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package louds

import "fmt"

// assertf panics with a formatted message if cond is false. It exists to make
// internal invariant checks read like a single statement instead of an
// if-panic pair scattered through the construction path.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("louds: "+format, args...))
	}
}
