package wallet

import "errors"

// ErrInvalidInput is returned, wrapped, when caller supplied data cannot be
// processed: out of order or malformed transactions, negative amounts, unknown
// jurisdiction codes.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidConfiguration is returned, wrapped, when a configuration value is
// not supported: unknown cost basis method, missing tax rates.
var ErrInvalidConfiguration = errors.New("invalid configuration")
