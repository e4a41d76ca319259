// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import "encoding/binary"

// Algorithm identifies which Argon2 variant governs addressing.
type Algorithm uint32

const (
	Argon2d Algorithm = iota
	Argon2i
	Argon2id
)

// Version selects the block-combination rule used in passes >= 1.
type Version uint32

const (
	// Version0x10 is Argon2 1.2.1 and earlier: passes >= 1 overwrite.
	Version0x10 Version = 0x10
	// Version0x13 is the current version: passes >= 1 XOR into the
	// previous contents.
	Version0x13 Version = 0x13
)

// Params carries the caller-validated cost and shape parameters the core
// needs. Validation proper (ranges, sane combinations) is the caller's
// responsibility; the core only defensively rejects values that would
// otherwise panic or divide by zero.
type Params struct {
	Version Version
	Time    uint32 // t_cost: number of passes
	Lanes   uint32
	Threads uint32
	Memory  uint32 // m_cost in blocks (KiB), pre-rounding
}

// Instance is a configuration snapshot plus the memory it fills. Its fields
// are immutable after construction; it is built from H0, filled once, and
// finalized once.
type Instance struct {
	params     Params
	alg        Algorithm
	laneLength uint32
	memory     Memory
	hasher     LongHasher
}

// NewInstance constructs an Instance bound to memory, seeds its first two
// blocks per lane from h0, but does not yet fill or finalize. It uses the
// RFC 9106-conformant BLAKE2b long-hash backend throughout.
//
// memory must already be sized and segmented per
// SegmentLengthForParams(params.Memory, params.Lanes); the core does not
// allocate or resize it.
func NewInstance(params Params, alg Algorithm, h0 [64]byte, memory Memory) (*Instance, error) {
	return newInstance(params, alg, h0, memory, defaultLongHasher{})
}

// NewInstanceWithHasher is like NewInstance but lets the caller substitute
// the long-hash backend (see blake2b_long.go) used for both first-block
// seeding and finalization — e.g. to opt into the
// non-conformant BLAKE3LongHasher fast path. The same backend is used
// consistently across the whole instance; mixing backends within one hash
// would produce an output that matches neither.
func NewInstanceWithHasher(params Params, alg Algorithm, h0 [64]byte, memory Memory, hasher LongHasher) (*Instance, error) {
	return newInstance(params, alg, h0, memory, hasher)
}

func newInstance(params Params, alg Algorithm, h0 [64]byte, memory Memory, hasher LongHasher) (*Instance, error) {
	if params.Lanes == 0 || params.Time == 0 || memory.SegmentLength() == 0 {
		return nil, ErrInvalidParams
	}

	if params.Threads > params.Lanes {
		params.Threads = params.Lanes
	}
	if params.Threads == 0 {
		params.Threads = 1
	}

	inst := &Instance{
		params:     params,
		alg:        alg,
		laneLength: memory.SegmentLength() * SyncPoints,
		memory:     memory,
		hasher:     hasher,
	}

	if err := inst.fillFirstBlocks(h0); err != nil {
		return nil, err
	}
	return inst, nil
}

// fillFirstBlocks computes the two seed blocks per lane:
// H′_1024(H0 ‖ LE32(i) ‖ LE32(lane)) for i in {0, 1}.
func (inst *Instance) fillFirstBlocks(h0 [64]byte) error {
	input := make([]byte, 64+4+4)
	copy(input[:64], h0[:])

	var hashed [BlockSize]byte

	for lane := uint32(0); lane < inst.params.Lanes; lane++ {
		binary.LittleEndian.PutUint32(input[68:72], lane)

		binary.LittleEndian.PutUint32(input[64:68], 0)
		if err := inst.hasher.Long(hashed[:], input); err != nil {
			return err
		}
		var b0 Block
		b0.FromBytes(hashed[:])
		*inst.memory.GetBlockMut(lane * inst.laneLength) = b0

		binary.LittleEndian.PutUint32(input[64:68], 1)
		if err := inst.hasher.Long(hashed[:], input); err != nil {
			return err
		}
		var b1 Block
		b1.FromBytes(hashed[:])
		*inst.memory.GetBlockMut(lane*inst.laneLength + 1) = b1
	}

	return nil
}

// Hash fills memory and derives the output tag into out.
func (inst *Instance) Hash(out []byte) error {
	inst.fillMemoryBlocks()
	return inst.finalize(out)
}

// finalize XORs the last block of every lane together and extends the
// result into out via H′.
func (inst *Instance) finalize(out []byte) error {
	acc := inst.memory.GetBlock(inst.laneLength - 1)

	for lane := uint32(1); lane < inst.params.Lanes; lane++ {
		last := inst.memory.GetBlock(lane*inst.laneLength + inst.laneLength - 1)
		acc.XOR(&last)
	}

	var buf [BlockSize]byte
	acc.ToBytes(buf[:])

	return inst.hasher.Long(out, buf[:])
}
