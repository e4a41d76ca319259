// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import "testing"

// TestFillSegmentWritesDisjointIndices checks spec §8 property 2: for a
// given (pass, slice), the block indices written by fillSegment for lane l
// are exactly {l*laneLength + slice*segmentLength + i | i in [start, segmentLength)},
// and no two lanes ever touch the same index.
func TestFillSegmentWritesDisjointIndices(t *testing.T) {
	const lanes = 3
	const segmentLength = 8
	const laneLength = segmentLength * SyncPoints

	params := Params{Version: Version0x13, Time: 2, Lanes: lanes, Threads: 1, Memory: laneLength * lanes}
	blocks := make([]Block, laneLength*lanes)
	mem := NewMemory(blocks, segmentLength)

	var h0 [64]byte
	inst, err := newInstance(params, Argon2id, h0, mem, defaultLongHasher{})
	if err != nil {
		t.Fatalf("newInstance: %v", err)
	}

	for pass := uint32(0); pass < params.Time; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			written := make(map[uint32]uint32) // index -> lane that wrote it

			for lane := uint32(0); lane < lanes; lane++ {
				// snapshot every word of every block in this lane's full
				// memory region before the fill, so we can tell which
				// indices actually changed.
				before := make([]Block, laneLength)
				for i := uint32(0); i < laneLength; i++ {
					before[i] = inst.memory.GetBlock(lane*laneLength + i)
				}

				inst.fillSegment(Position{Pass: pass, Lane: lane, Slice: slice})

				start := uint32(0)
				if pass == 0 && slice == 0 {
					start = 2
				}
				want := make(map[uint32]bool)
				for i := start; i < segmentLength; i++ {
					want[lane*laneLength+slice*segmentLength+i] = true
				}

				for i := uint32(0); i < laneLength; i++ {
					idx := lane*laneLength + i
					after := inst.memory.GetBlock(idx)
					changed := after != before[i]
					if want[idx] && !changed && pass == 0 {
						// pass 0 always overwrites so every targeted index
						// must differ from its (zero) initial value, unless
						// genuinely filled with zero content which is
						// vanishingly unlikely for real compression output.
						t.Errorf("pass=%d slice=%d lane=%d: expected index %d to be written", pass, slice, lane, idx)
					}
					if !want[idx] && changed {
						t.Errorf("pass=%d slice=%d lane=%d: unexpected write outside target segment at index %d", pass, slice, lane, idx)
					}
					if changed {
						if prevLane, ok := written[idx]; ok && prevLane != lane {
							t.Errorf("pass=%d slice=%d: index %d written by both lane %d and lane %d", pass, slice, idx, prevLane, lane)
						}
						written[idx] = lane
					}
				}
			}
		}
	}
}
