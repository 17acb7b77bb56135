//go:build !nmgl_release

package assert

import (
	"fmt"

	"github.com/bloeys/nmgl/logging"
)

const IsEnabled = true

// T panics with the formatted message if check is false.
// Asserts are compiled out with the 'nmgl_release' build tag.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	msg = fmt.Sprintf(msg, args...)
	logging.ErrLog.Println("Assert failed: " + msg)
	panic("Assert failed: " + msg)
}
