// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bootstrap application runtime.
//
// It wires configuration, the backend client bootstrap and the optional
// reachability probe into a single run that produces the shared handle.
package client
