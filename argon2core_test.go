// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import (
	"encoding/binary"

	"github.com/gtank/blake2/blake2b"
)

// computeH0 implements the Argon2 initial-hash formula (RFC 9106 §3.2),
// which is explicitly out of this package's scope (spec §1) but is needed
// by the tests to exercise Hash the way a real caller would.
func computeH0(password, salt, secret, ad []byte, params Params, alg Algorithm, outlen uint32) [64]byte {
	d, err := blake2b.NewDigest(nil, nil, nil, 64)
	if err != nil {
		panic(err)
	}

	var u32 [4]byte
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		d.Write(u32[:])
	}
	writeField := func(b []byte) {
		writeU32(uint32(len(b)))
		d.Write(b)
	}

	writeU32(params.Lanes)
	writeU32(outlen)
	writeU32(params.Memory)
	writeU32(params.Time)
	writeU32(uint32(params.Version))
	writeU32(uint32(alg))
	writeField(password)
	writeField(salt)
	writeField(secret)
	writeField(ad)

	var h0 [64]byte
	copy(h0[:], d.Sum(nil))
	return h0
}

// hashWithParams is a small test-only convenience wrapping Hash with
// caller-allocated memory sized per SegmentLengthForParams, mirroring what a
// full Argon2 frontend (out of this package's scope) would do.
func hashWithParams(password, salt []byte, params Params, alg Algorithm, outlen uint32) []byte {
	segmentLength := SegmentLengthForParams(params.Memory, params.Lanes)
	numBlocks := segmentLength * SyncPoints * params.Lanes

	memory := make([]Block, numBlocks)
	h0 := computeH0(password, salt, nil, nil, params, alg, outlen)

	out := make([]byte, outlen)
	if err := Hash(params, alg, h0, memory, out); err != nil {
		panic(err)
	}
	return out
}
