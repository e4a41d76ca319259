// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argon2core implements the memory-filling core of the Argon2
// family of password-hashing functions (Argon2d, Argon2i, Argon2id) as
// standardized in RFC 9106.
//
// This package is deliberately scoped to the core state machine: given an
// already-derived 64-byte initial hash H0, a caller-allocated memory region,
// and cost/parallelism parameters, it fills memory with a deterministic
// sequence of 1024-byte blocks and derives a fixed-length output tag. It does
// not derive H0 from a password, validate parameters beyond defensive
// sanity checks, manage memory allocation strategy, or provide PHC string
// encoding — those are the responsibility of a calling package.
//
// # Argon2i
//
// Argon2i uses data-independent memory access, which is preferred for
// password hashing and password-based key derivation. Argon2i requires more
// passes over memory than Argon2id to protect from trade-off attacks.
//
// # Argon2id
//
// Argon2id is a hybrid combining Argon2i and Argon2d. It uses
// data-independent memory access for the first half of the first pass over
// memory and data-dependent memory access for the rest.
//
// # Argon2d
//
// Argon2d is the data-dependent version, which is vulnerable to
// side-channel attacks but provides the best resistance against
// time-memory trade-off attacks.
//
// [1] https://www.rfc-editor.org/rfc/rfc9106
package argon2core
