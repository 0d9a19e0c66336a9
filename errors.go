// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by Index.Load when an element's
	// position lies outside the index bounds. The whole batch is
	// rejected and the previous build, if any, remains queryable.
	ErrOutOfBounds = textErr("out of bounds")
	// ErrReleased is returned when attempting to load into an Index
	// whose buffers have been released.
	ErrReleased = textErr("released")
)

const packageName = "quadindex: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
