//go:build linux
// +build linux

package hwio

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// linuxAccessor goes through the msr kernel module for CPU P-states
// and sysfs for the Northbridge PCI configuration registers. Both
// paths need root; writes additionally need the msr module loaded
// without the default read-only restriction.
type linuxAccessor struct{}

// New returns the register accessor for this platform.
func New() (Accessor, error) {
	if _, err := os.Stat(msrPath(0)); err != nil {
		return nil, fmt.Errorf("msr device not available (is the msr module loaded?): %w", err)
	}
	return &linuxAccessor{}, nil
}

func msrPath(core int) string {
	return fmt.Sprintf("/dev/cpu/%d/msr", core)
}

func pciConfigPath(r Register) string {
	return fmt.Sprintf("/sys/bus/pci/devices/0000:%02x:%02x.%d/config", r.Bus, r.Device, r.Function)
}

func (a *linuxAccessor) ReadPState(index, core int) (uint32, error) {
	reg, err := RegisterForPState(index)
	if err != nil {
		return 0, err
	}
	if reg.Space == SpaceMSR {
		v, err := a.readMSR(core, reg.MSR)
		return uint32(v), err
	}
	return a.readPCIConfig(reg)
}

func (a *linuxAccessor) WritePState(index, core int, value uint32) error {
	reg, err := RegisterForPState(index)
	if err != nil {
		return err
	}
	if reg.Space == SpaceMSR {
		// Keep the upper half of the 64-bit MSR intact.
		old, err := a.readMSR(core, reg.MSR)
		if err != nil {
			return err
		}
		return a.writeMSR(core, reg.MSR, old&^uint64(0xFFFFFFFF)|uint64(value))
	}
	return a.writePCIConfig(reg, value)
}

func (a *linuxAccessor) readMSR(core int, msr uint32) (uint64, error) {
	f, err := os.Open(msrPath(core))
	if err != nil {
		return 0, fmt.Errorf("failed to open msr device for core %d: %w", core, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 8)
	n, err := unix.Pread(int(f.Fd()), buf, int64(msr))
	if err != nil {
		return 0, fmt.Errorf("failed to read msr 0x%08X on core %d: %w", msr, core, err)
	}
	if n != 8 {
		return 0, fmt.Errorf("short msr read: %d bytes", n)
	}
	return binary.LittleEndian.Uint64(buf), nil
}

func (a *linuxAccessor) writeMSR(core int, msr uint32, value uint64) error {
	f, err := os.OpenFile(msrPath(core), os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open msr device for core %d: %w", core, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, value)
	n, err := unix.Pwrite(int(f.Fd()), buf, int64(msr))
	if err != nil {
		return fmt.Errorf("failed to write msr 0x%08X on core %d: %w", msr, core, err)
	}
	if n != 8 {
		return fmt.Errorf("short msr write: %d bytes", n)
	}
	return nil
}

func (a *linuxAccessor) readPCIConfig(reg Register) (uint32, error) {
	f, err := os.Open(pciConfigPath(reg))
	if err != nil {
		return 0, fmt.Errorf("failed to open pci config space: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4)
	n, err := unix.Pread(int(f.Fd()), buf, int64(reg.Offset))
	if err != nil {
		return 0, fmt.Errorf("failed to read pci config 0x%02X: %w", reg.Offset, err)
	}
	if n != 4 {
		return 0, fmt.Errorf("short pci config read: %d bytes", n)
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (a *linuxAccessor) writePCIConfig(reg Register, value uint32) error {
	f, err := os.OpenFile(pciConfigPath(reg), os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open pci config space: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	n, err := unix.Pwrite(int(f.Fd()), buf, int64(reg.Offset))
	if err != nil {
		return fmt.Errorf("failed to write pci config 0x%02X: %w", reg.Offset, err)
	}
	if n != 4 {
		return fmt.Errorf("short pci config write: %d bytes", n)
	}
	return nil
}

func (a *linuxAccessor) Close() error {
	return nil
}
