// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2core

import "errors"

// ErrOutputTooLong is returned by H′ (and propagated by Hash) when the
// requested tag length falls outside [MinOutlen, MaxOutlen].
var ErrOutputTooLong = errors.New("argon2core: output length out of range")

// ErrInvalidParams is returned by NewInstance when a caller-supplied
// parameter is a contract violation the core checks defensively rather than
// trusting (spec §7: parameter validation proper is the caller's job, but
// obviously-malformed inputs that would otherwise panic deep in the fill
// loop are rejected up front).
var ErrInvalidParams = errors.New("argon2core: invalid parameters")
