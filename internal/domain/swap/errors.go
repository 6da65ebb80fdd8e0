package swap

import "errors"

var (
	ErrSwapNotFound      = errors.New("shift swap not found")
	ErrSwapStateChanged  = errors.New("shift swap was already claimed or resolved")
	ErrCannotClaimOwn    = errors.New("cannot claim your own swap request")
	ErrSwapNotClaimed    = errors.New("shift swap has no claimant to approve")
	ErrSwapNotCancelable = errors.New("shift swap can no longer be cancelled")
)
