// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend bootstraps the shared client handle for the hosted backend
// platform.
//
// [Load] reads the endpoint URL and public key from a validated
// [config.ClientBackend], hands exactly those two values to a [ClientFactory]
// and wraps the produced client in an immutable [Handle]. The handle is
// returned to the caller and passed explicitly to whatever needs it; the
// package keeps no package-level state.
//
// The privileged service role key travels in the same config struct but is
// never given to the factory.
package backend
