// Package kernel is the root convenience surface of the domain kernel:
// immutable value objects, typed domain errors with stable codes, and
// validated domain primitives.
//
// It re-exports the common path so consumers need a single import:
//
//	email, err := kernel.NewEmail(input)
//	if kernel.IsArgumentNotProvided(err) {
//	    ...
//	}
//
// The subpackages (errors, valueobject, domain, validation, functional,
// codec, logging, metrics) carry the full API.
package kernel

import (
	"github.com/auth-platform/libs/go/kernel/domain"
	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// Error model.
type (
	DomainError     = errors.DomainError
	ErrorCode       = errors.ErrorCode
	SerializedError = errors.SerializedError
)

// Stable error codes.
const (
	CodeArgumentNotProvided = errors.CodeArgumentNotProvided
	CodeArgumentInvalid     = errors.CodeArgumentInvalid
	CodeArgumentOutOfRange  = errors.CodeArgumentOutOfRange
	CodeNotFound            = errors.CodeNotFound
	CodeConflict            = errors.CodeConflict
	CodeInternal            = errors.CodeInternal
)

// Error constructors and helpers.
var (
	NewError            = errors.New
	ArgumentNotProvided = errors.ArgumentNotProvided
	ArgumentInvalid     = errors.ArgumentInvalid
	ArgumentOutOfRange  = errors.ArgumentOutOfRange
	NotFound            = errors.NotFound
	Conflict            = errors.Conflict
	Internal            = errors.Internal
	Wrap                = errors.Wrap

	AsDomain              = errors.AsDomain
	CodeOf                = errors.CodeOf
	IsCode                = errors.IsCode
	IsArgumentNotProvided = errors.IsArgumentNotProvided
	IsArgumentInvalid     = errors.IsArgumentInvalid
	IsArgumentOutOfRange  = errors.IsArgumentOutOfRange
	IsNotFound            = errors.IsNotFound
	IsConflict            = errors.IsConflict
	IsInternal            = errors.IsInternal
	AllCodes              = errors.AllCodes
)

// IsValueObject reports whether a value is a kernel value object.
var IsValueObject = valueobject.Is

// Domain primitives.
type (
	Email       = domain.Email
	UUID        = domain.UUID
	ULID        = domain.ULID
	Money       = domain.Money
	MoneyValue  = domain.MoneyValue
	Currency    = domain.Currency
	PhoneNumber = domain.PhoneNumber
	URL         = domain.URL
	Timestamp   = domain.Timestamp
	Duration    = domain.Duration
)

// Supported currencies.
const (
	USD = domain.USD
	EUR = domain.EUR
	GBP = domain.GBP
	JPY = domain.JPY
	BRL = domain.BRL
	CNY = domain.CNY
	INR = domain.INR
	AUD = domain.AUD
	CAD = domain.CAD
	CHF = domain.CHF
)

// Domain primitive constructors.
var (
	NewEmail       = domain.NewEmail
	MustNewEmail   = domain.MustNewEmail
	NewUUID        = domain.NewUUID
	ParseUUID      = domain.ParseUUID
	NilUUID        = domain.NilUUID
	NewULID        = domain.NewULID
	ParseULID      = domain.ParseULID
	NewMoney       = domain.NewMoney
	MustNewMoney   = domain.MustNewMoney
	NewPhoneNumber = domain.NewPhoneNumber
	NewURL         = domain.NewURL
	Now            = domain.Now
	NewTimestamp   = domain.NewTimestamp
	ParseTimestamp = domain.ParseTimestamp
	NewDuration    = domain.NewDuration
	ParseDuration  = domain.ParseDuration
)
