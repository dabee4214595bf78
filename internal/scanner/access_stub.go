//go:build windows
// +build windows

package scanner

// Access is a no-op on windows, permission errors surface when the port
// is opened.
func Access(device string) error {
	return nil
}
