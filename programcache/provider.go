// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package programcache

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/progkey"
)

// NewForProvider creates a program cache bound to a host application's
// shared GPU device.
//
// The provider is the standard gpucontext integration point; hosts that also
// expose direct HAL access (HalDevice() any) get device-backed compiles,
// others fall back to a source-only cache. A nil provider is allowed and
// behaves like a host without HAL access.
func NewForProvider(provider gpucontext.DeviceProvider, capacity int) *Cache {
	device := halDevice(provider)
	if device == nil {
		progkey.Logger().Warn("programcache: provider has no HAL device, programs will be source-only")
	}
	return New(capacity, device)
}

// halDevice extracts a hal.Device from a provider that exposes one.
func halDevice(provider gpucontext.DeviceProvider) hal.Device {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil
	}
	return device
}
