// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import "sync"

// fillMemoryBlocks drives passes 0..Time and slices 0..SyncPoints, filling
// every lane's segment in each slice before advancing. Lanes within a slice
// run sequentially when Threads == 1, else one goroutine per lane, joined
// before the next slice begins — the hard synchronization barrier that
// makes inter-lane references safe from pass 1 onward.
func (inst *Instance) fillMemoryBlocks() {
	if inst.params.Threads <= 1 {
		inst.fillMemoryBlocksSequential()
		return
	}
	inst.fillMemoryBlocksParallel()
}

func (inst *Instance) fillMemoryBlocksSequential() {
	for pass := uint32(0); pass < inst.params.Time; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			for lane := uint32(0); lane < inst.params.Lanes; lane++ {
				inst.fillSegment(Position{Pass: pass, Lane: lane, Slice: slice})
			}
		}
	}
}

func (inst *Instance) fillMemoryBlocksParallel() {
	for pass := uint32(0); pass < inst.params.Time; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < inst.params.Lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					inst.fillSegment(Position{Pass: pass, Lane: lane, Slice: slice})
				}(lane)
			}
			wg.Wait()
		}
	}
}
