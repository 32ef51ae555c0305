package application

import "errors"

var (
	// ErrNoRateSources ...
	ErrNoRateSources = errors.New("no rate sources configured")
	// ErrNilRateStore ...
	ErrNilRateStore = errors.New("rate store must not be nil")
	// ErrMissingWalletID ...
	ErrMissingWalletID = errors.New("wallet id must not be empty")
	// ErrDuplicatedWallet ...
	ErrDuplicatedWallet = errors.New("wallet listed more than once")
)
