// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package device identifies the Ryzen AI NPU variant installed on the host.
//
// Identification is a three step affair:
//
//  1. An Enumerator lists PCI devices. On Windows this runs
//     `pnputil /enum-devices /bus PCI /deviceids`; on Linux the same hardware ids
//     are rendered from /sys/bus/pci/devices.
//  2. Decode turns the raw output into text (Windows-1252, never fails).
//  3. Classify matches the text against a fixed table of hardware ids.
//
// The table is checked in order and a later match overwrites an earlier one, so a
// host reporting several known ids is classified by the last one in the table:
//
//	PCI\VEN_1022&DEV_1502&REV_00  PHX/HPT
//	PCI\VEN_1022&DEV_17F0&REV_00  STX
//	PCI\VEN_1022&DEV_17F0&REV_10  STX
//	PCI\VEN_1022&DEV_17F0&REV_11  STX
//	PCI\VEN_1022&DEV_17F0&REV_20  KRK
//
// Unknown hardware is not an error: it classifies as VariantUnknown.
//
// Usage:
//
//	id := device.NewIdentifier(device.NewDefaultEnumerator())
//	det, err := id.Identify(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(det.Variant)
package device
