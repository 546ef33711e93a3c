// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = ProcessError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("node count does not match tree count")
	ErrDuplicateKey          = ExistsError("duplicate key")
	ErrEmptyTree             = NotFoundError("tree is empty")
	ErrHeightMismatch        = InvalidError("stored height does not match sub-tree height")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRange          = InvalidError("invalid range")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingCommand        = InvalidError("missing command")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = InvalidError("keys are not in ascending order")
	ErrUnbalancedNode        = InvalidError("node is not height balanced")
	ErrUnknownCommand        = InvalidError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
