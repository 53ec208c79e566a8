package repo

import "errors"

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")
var ErrAlreadyClaimed = errors.New("already claimed")
var ErrInsufficientQuantity = errors.New("insufficient quantity")
var ErrDuplicateListing = errors.New("active listing already exists")
var ErrListingNotActive = errors.New("listing is not active")
var ErrNotOwner = errors.New("not the owner")
var ErrSelfTransfer = errors.New("cannot transfer to yourself")
var ErrSelfPurchase = errors.New("cannot buy your own listing")
var ErrSupplyExhausted = errors.New("supply exhausted")
