// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy holds the declarative per-field access metadata of the
// user record.
//
// Every persisted field carries a [Policy] made of three flags:
//   - Public: the field is included in projections sent to any client;
//   - ReadOnly: the field can never be changed through a client update,
//     only by internal credential or administrative operations;
//   - ProfileInformation: the field counts towards profile completeness.
//
// A [Registry] is immutable once built. [Users] is the registry of the user
// record and is consulted by the projection and validators packages instead
// of scattering visibility checks over call sites.
package policy
