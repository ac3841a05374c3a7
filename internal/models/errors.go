package models

import "errors"

// Analysis error taxonomy. Handlers map these to HTTP statuses with
// errors.Is; everything else is treated as an internal error.
var (
	// ErrDocumentNotFound indicates the statement file does not exist or
	// cannot be opened.
	ErrDocumentNotFound = errors.New("statement document not found")

	// ErrEmptyPortfolio indicates extraction produced zero holdings, or an
	// empty holdings list was passed to the metrics engine.
	ErrEmptyPortfolio = errors.New("portfolio contains no holdings")

	// ErrInvalidPortfolioValue indicates the summed portfolio value is zero
	// or negative, so weights cannot be computed.
	ErrInvalidPortfolioValue = errors.New("total portfolio value is not positive")

	// ErrInvalidMetric indicates a computed metric fell outside its
	// mathematically valid range. This is an internal bug, never clamped.
	ErrInvalidMetric = errors.New("metric outside valid range")
)
