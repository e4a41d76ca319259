// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

// dataIndependentAddressing reports whether pos should use the
// data-independent address generator rather than the previous block's
// first word as the pseudo-random source.
func dataIndependentAddressing(alg Algorithm, pos Position) bool {
	return alg == Argon2i ||
		(alg == Argon2id && pos.Pass == 0 && pos.Slice < SyncPoints/2)
}

// fillSegment fills one lane×slice segment of memory (pos.Index is ignored
// on entry; it is overwritten per-block during the loop).
func (inst *Instance) fillSegment(pos Position) {
	segmentLength := inst.memory.SegmentLength()
	laneLength := inst.laneLength

	var addrGen *addressGenerator
	var addressBlock *Block
	independent := dataIndependentAddressing(inst.alg, pos)

	startingIndex := uint32(0)
	if pos.Pass == 0 && pos.Slice == 0 {
		startingIndex = 2
	}

	if independent {
		addrGen = newAddressGenerator(pos, uint64(inst.memory.Len()), inst.params.Time, inst.alg)
		if pos.Pass == 0 && pos.Slice == 0 {
			addressBlock = addrGen.next()
		}
	}

	currOffset := pos.Lane*laneLength + pos.Slice*segmentLength + startingIndex

	var prevOffset uint32
	if currOffset%laneLength == 0 {
		prevOffset = currOffset + laneLength - 1
	} else {
		prevOffset = currOffset - 1
	}

	for i := startingIndex; i < segmentLength; i++ {
		if currOffset%laneLength == 1 {
			prevOffset = currOffset - 1
		}

		var pseudoRand uint64
		if independent {
			if i%QWordsInBlock == 0 {
				addressBlock = addrGen.next()
			}
			pseudoRand = addressBlock[i%QWordsInBlock]
		} else {
			pseudoRand = inst.memory.GetBlock(prevOffset)[0]
		}

		refLane := uint32(pseudoRand>>32) % inst.params.Lanes
		if pos.Pass == 0 && pos.Slice == 0 {
			refLane = pos.Lane
		}

		pos.Index = i
		refIndex := indexAlpha(pos, segmentLength, laneLength, uint32(pseudoRand), refLane == pos.Lane)

		refOffset := refLane*laneLength + refIndex
		refBlock := inst.memory.GetBlock(refOffset)
		prevBlock := inst.memory.GetBlock(prevOffset)

		withXOR := !(inst.params.Version == Version0x10 || pos.Pass == 0)
		fillBlock(inst.memory.GetBlockMut(currOffset), &prevBlock, &refBlock, withXOR)

		currOffset++
		prevOffset++
	}
}
