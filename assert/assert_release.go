//go:build nmgl_release

package assert

const IsEnabled = false

func T(check bool, msg string, args ...any) {
}
