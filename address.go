// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

// addressGenerator produces successive 128-word pseudo-random address
// blocks for data-independent reference selection (Argon2i, and the first
// half of pass 0 for Argon2id).
//
// input's words 0-5 are fixed for the lifetime of one fill_segment call:
// (pass, lane, slice, total blocks, passes, algorithm id). Word 6 is an
// incrementing counter. A fresh addressGenerator is constructed per segment
// call — it must never be hoisted across slice boundaries (spec §9).
type addressGenerator struct {
	input   Block
	address Block
}

func newAddressGenerator(pos Position, totalBlocks uint64, passes uint32, alg Algorithm) *addressGenerator {
	g := &addressGenerator{}
	g.input[0] = uint64(pos.Pass)
	g.input[1] = uint64(pos.Lane)
	g.input[2] = uint64(pos.Slice)
	g.input[3] = totalBlocks
	g.input[4] = uint64(passes)
	g.input[5] = uint64(alg)
	return g
}

// next advances the counter and refills the address block: G over the
// (zero, input) pair, then G over (zero, that result), per spec §4.3.
func (g *addressGenerator) next() *Block {
	g.input[6]++
	var zero Block
	fillBlock(&g.address, &zero, &g.input, false)
	fillBlock(&g.address, &zero, &g.address, false)
	return &g.address
}
