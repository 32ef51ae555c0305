package ratesource

import (
	"errors"

	"github.com/tdex-network/walletkit/internal/core/domain"
)

var (
	// ErrPairNotSupported ...
	ErrPairNotSupported = domain.ErrPairNotSupported
	// ErrMalformedResponse ...
	ErrMalformedResponse = errors.New("malformed rate source response")
)
