// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import "encoding/binary"

// SyncPoints is the number of segments a lane is divided into per pass.
const SyncPoints = 4

const (
	// BlockSize is the size of an Argon2 memory block in bytes.
	BlockSize = 1024

	// QWordsInBlock is the number of uint64 words in a Block.
	QWordsInBlock = BlockSize / 8
)

// Block is a 1024-byte Argon2 memory block, addressable as 128 little-endian
// uint64 words.
type Block [QWordsInBlock]uint64

// XOR performs an in-place, elementwise XOR of b with other.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Copy overwrites b with the contents of other.
func (b *Block) Copy(other *Block) {
	*b = *other
}

// Zero clears every word of b.
func (b *Block) Zero() {
	*b = Block{}
}

// FromBytes loads a Block from exactly BlockSize little-endian bytes.
func (b *Block) FromBytes(data []byte) {
	for i := 0; i < QWordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
}

// ToBytes serializes b as BlockSize little-endian bytes.
func (b *Block) ToBytes(out []byte) {
	for i := 0; i < QWordsInBlock; i++ {
		binary.LittleEndian.PutUint64(out[i*8:(i+1)*8], b[i])
	}
}

// Position identifies a single block's coordinates in the memory state
// machine: which pass, which lane, which slice within the lane, and which
// index within the segment.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// Memory is a mutable view over a contiguous array of blocks, carrying the
// derived per-segment length. The core never allocates this array itself —
// it is borrowed exclusively from the caller for the duration of a hash.
type Memory struct {
	blocks        []Block
	segmentLength uint32
}

// NewMemory wraps blocks as a Memory view with the given segment length.
// The caller must ensure len(blocks) == lanes*SyncPoints*segmentLength.
func NewMemory(blocks []Block, segmentLength uint32) Memory {
	return Memory{blocks: blocks, segmentLength: segmentLength}
}

// SegmentLengthForParams computes the Argon2-mandated segment length: memory
// is rounded down to a multiple of 4*lanes blocks, with a floor of 8*lanes.
func SegmentLengthForParams(mCost, lanes uint32) uint32 {
	memoryBlocks := mCost
	if memoryBlocks < 2*SyncPoints*lanes {
		memoryBlocks = 2 * SyncPoints * lanes
	}
	return memoryBlocks / (lanes * SyncPoints)
}

// Len returns the total number of blocks in the view.
func (m *Memory) Len() int { return len(m.blocks) }

// SegmentLength returns the number of blocks per segment.
func (m *Memory) SegmentLength() uint32 { return m.segmentLength }

// GetBlock returns a value copy of the block at idx.
func (m *Memory) GetBlock(idx uint32) Block { return m.blocks[idx] }

// GetBlockMut returns a mutable handle into the block at idx.
func (m *Memory) GetBlockMut(idx uint32) *Block { return &m.blocks[idx] }
