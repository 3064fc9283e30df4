// pkg/system/gpu.go
package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/archup-dev/archup/pkg/core"
)

// GPUVendor identifies the detected graphics hardware vendor
type GPUVendor int

const (
	VendorUnknown GPUVendor = iota
	VendorNVIDIA
	VendorAMD
	VendorIntel
)

// String returns the vendor name
func (v GPUVendor) String() string {
	switch v {
	case VendorNVIDIA:
		return "nvidia"
	case VendorAMD:
		return "amd"
	case VendorIntel:
		return "intel"
	default:
		return "unknown"
	}
}

// DetectGPU identifies the GPU vendor from lspci output
func (m *Manager) DetectGPU(ctx context.Context) (GPUVendor, error) {
	out, err := m.run.Output(ctx, "lspci")
	if err != nil {
		return VendorUnknown, &core.Error{Op: "probe gpu", Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
	return parseGPUVendor(out), nil
}

// parseGPUVendor scans lspci output for display controllers
func parseGPUVendor(out string) GPUVendor {
	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "vga compatible controller") &&
			!strings.Contains(lower, "3d controller") &&
			!strings.Contains(lower, "display controller") {
			continue
		}

		switch {
		case strings.Contains(lower, "nvidia"):
			return VendorNVIDIA
		case strings.Contains(lower, "amd"), strings.Contains(lower, "radeon"), strings.Contains(lower, "advanced micro devices"):
			return VendorAMD
		case strings.Contains(lower, "intel"):
			return VendorIntel
		}
	}
	return VendorUnknown
}

// DriverPackages returns the driver set for a vendor. NVIDIA defaults to
// the proprietary driver; nvidiaOpen selects the open kernel modules.
func DriverPackages(v GPUVendor, nvidiaOpen bool) []string {
	switch v {
	case VendorNVIDIA:
		driver := "nvidia"
		if nvidiaOpen {
			driver = "nvidia-open"
		}
		return []string{driver, "nvidia-utils", "lib32-nvidia-utils"}
	case VendorAMD:
		return []string{"mesa", "lib32-mesa", "vulkan-radeon", "lib32-vulkan-radeon"}
	case VendorIntel:
		return []string{"mesa", "lib32-mesa", "vulkan-intel", "lib32-vulkan-intel"}
	default:
		return nil
	}
}

// InstallGPUDrivers detects the GPU and installs the matching driver set.
// An unknown vendor is logged and skipped, not an error.
func (m *Manager) InstallGPUDrivers(ctx context.Context, nvidiaOpen bool) error {
	vendor, err := m.DetectGPU(ctx)
	if err != nil {
		return err
	}

	pkgs := DriverPackages(vendor, nvidiaOpen)
	if pkgs == nil {
		m.logger.Warn().Msg("no supported GPU detected, skipping driver install")
		return nil
	}

	m.logger.Info().Stringer("vendor", vendor).Strs("packages", pkgs).Msg("installing GPU drivers")
	return m.pacman.InstallAll(ctx, pkgs)
}
