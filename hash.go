// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

// Hash is the core's external entry point (spec §6): given already-derived
// parameters, an algorithm, initial hash H0, caller-allocated memory and
// caller-allocated output, it fills memory and writes the output tag.
//
// The caller is responsible for computing h0 (the BLAKE2b hash over the
// password/salt/secret/associated-data and parameters, per RFC 9106 §3.2)
// and for allocating memory sized to
// params.Lanes * SyncPoints * SegmentLengthForParams(params.Memory, params.Lanes)
// blocks.
func Hash(params Params, alg Algorithm, h0 [64]byte, memory []Block, out []byte) error {
	segmentLength := SegmentLengthForParams(params.Memory, params.Lanes)
	mem := NewMemory(memory, segmentLength)

	inst, err := NewInstance(params, alg, h0, mem)
	if err != nil {
		return err
	}
	return inst.Hash(out)
}
