// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rhash

import "errors"

// ErrInvertedRange indicates that the end of a range is before its start.
var ErrInvertedRange = errors.New("rhash: range end before start")

// ErrOutOfBounds indicates that a range index exceeds the length of the
// hashed sequence.
var ErrOutOfBounds = errors.New("rhash: index out of bounds")
