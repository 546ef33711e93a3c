// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes so callers can test the kind of failure,
// e.g. IsErrNotFound is true for both ErrKeyNotFound and ErrEmptyTree.
package fault
