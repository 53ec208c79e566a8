package validation

import "errors"

var UsernameIsRequired = errors.New("username is required")
var PasswordIsRequired = errors.New("password is required")
var PasswordIsTooShort = errors.New("password is too short")

var CollectibleIDIsRequired = errors.New("collectibleId is required")
var RecipientIsRequired = errors.New("recipientUsername is required")
var AmountIsInvalid = errors.New("amount must be a positive integer")

var PriceIsInvalid = errors.New("price must be between 1 and 10000")
var QuantityIsInvalid = errors.New("quantity must be between 1 and 1000")

var ListingIDIsRequired = errors.New("listingId is required")
var WalletAddressIsRequired = errors.New("walletAddress is required")
var CountIsInvalid = errors.New("count must be a positive integer")
