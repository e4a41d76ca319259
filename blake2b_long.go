// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import (
	"encoding/binary"

	"github.com/gtank/blake2/blake2b"
	"github.com/zeebo/blake3"
)

// MinOutlen and MaxOutlen bound the tag length H′ will produce, per RFC 9106.
const (
	MinOutlen = 4
	MaxOutlen = (1 << 32) - 1
)

// LongHasher computes H′, Argon2's variable-length hash extension, writing
// len(out) bytes derived from msg into out.
type LongHasher interface {
	Long(out, msg []byte) error
}

// defaultLongHasher is the RFC 9106-conformant BLAKE2b-based H′. This is the
// backend Hash and fillFirstBlocks use unless a caller explicitly opts into
// a different one via NewInstanceWithHasher.
type defaultLongHasher struct{}

// Long implements H′ as specified in RFC 9106 §3.1 / §3.2.1:
//
//   - outlen <= 64: a single BLAKE2b call with digest size outlen over
//     LE32(outlen) ‖ msg.
//   - outlen > 64: V1 = BLAKE2b_64(LE32(outlen) ‖ msg); emit V1[0:32].
//     Vk = BLAKE2b_64(Vk-1) for k = 2, 3, ...; emit Vk[0:32] while more
//     than 64 bytes remain. The final chunk emits
//     BLAKE2b(digest_size=r, msg=Vlast) for the 1 <= r <= 64 bytes left.
func (defaultLongHasher) Long(out, msg []byte) error {
	outlen := len(out)
	if outlen < MinOutlen || uint64(outlen) > MaxOutlen {
		return ErrOutputTooLong
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outlen))

	if outlen <= 64 {
		d, err := blake2b.NewDigest(nil, nil, nil, outlen)
		if err != nil {
			return err
		}
		d.Write(lenPrefix[:])
		d.Write(msg)
		copy(out, d.Sum(nil))
		return nil
	}

	d, err := blake2b.NewDigest(nil, nil, nil, 64)
	if err != nil {
		return err
	}
	d.Write(lenPrefix[:])
	d.Write(msg)
	v := d.Sum(nil)

	copied := copy(out, v[:32])

	for outlen-copied > 64 {
		d, err := blake2b.NewDigest(nil, nil, nil, 64)
		if err != nil {
			return err
		}
		d.Write(v)
		v = d.Sum(nil)
		copied += copy(out[copied:], v[:32])
	}

	remaining := outlen - copied
	d, err = blake2b.NewDigest(nil, nil, nil, remaining)
	if err != nil {
		return err
	}
	d.Write(v)
	last := d.Sum(nil)
	copy(out[copied:], last)

	return nil
}

// BLAKE3LongHasher is an opt-in, explicitly non-conformant H′ backend that
// replaces BLAKE2b with BLAKE3. It keeps the LE32(outlen) length prefix but
// reads the whole output from BLAKE3's XOF instead of chaining digests. It
// never produces RFC 9106 vectors; it exists for
// callers that want Argon2's memory-hard state machine with a faster
// digest and do not need interoperability with other Argon2
// implementations (e.g. cache warming, proof-of-work style uses).
type BLAKE3LongHasher struct{}

// Long implements H′ using BLAKE3's own arbitrary-output XOF instead of
// chained fixed-size BLAKE2b calls, since BLAKE3 supports extendable output
// natively.
func (BLAKE3LongHasher) Long(out, msg []byte) error {
	outlen := len(out)
	if outlen < MinOutlen || uint64(outlen) > MaxOutlen {
		return ErrOutputTooLong
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outlen))

	h := blake3.New()
	h.Write(lenPrefix[:])
	h.Write(msg)
	h.Digest().Read(out)
	return nil
}
