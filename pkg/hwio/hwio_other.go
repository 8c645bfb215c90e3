//go:build !linux
// +build !linux

package hwio

import "fmt"

// New returns the register accessor for this platform (stub for
// non-Linux; register access needs the msr module and sysfs).
func New() (Accessor, error) {
	return nil, fmt.Errorf("p-state register access is only supported on linux")
}
