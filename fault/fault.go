// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrChecksumMismatch     = InvalidError("checksum mismatch")
	ErrCommandTooLong       = LengthError("command too long")
	ErrConfigurationTable   = InvalidError("configuration did not return a table")
	ErrCountOutOfRange      = LengthError("count out of range")
	ErrEmptyInput           = LengthError("empty input")
	ErrEmptyTree            = LengthError("merkle tree has no leaves")
	ErrIndexOutOfRange      = NotFoundError("leaf index out of range")
	ErrInvalidChain         = InvalidError("invalid chain")
	ErrInvalidCharacter     = InvalidError("invalid base58 character")
	ErrInvalidLength        = LengthError("invalid length")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidPrivateKey    = InvalidError("invalid private key")
	ErrInvalidPublicKey     = InvalidError("invalid public key")
	ErrInvalidUtf8          = InvalidError("invalid utf-8 string")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrPayloadTooLarge      = LengthError("payload too large")
	ErrTooShort             = LengthError("decoded data too short")
	ErrTrailingData         = RecordError("unexpected trailing data")
	ErrTruncatedHeader      = LengthError("truncated message header")
	ErrTruncatedInput       = LengthError("truncated input")
	ErrTruncatedPayload     = LengthError("truncated message payload")
	ErrUnknownAddressType   = InvalidError("unknown address type")
	ErrUnknownCommand       = NotFoundError("unknown command")
	ErrWrongNetwork         = InvalidError("wrong network magic")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
//
// wrapped errors (fmt.Errorf with %w) are unwrapped first
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
