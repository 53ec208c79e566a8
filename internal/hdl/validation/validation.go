package validation

import (
	"github.com/yur1-dev/koka-backend/internal/dto"
)

const MaxPrice = 10000
const MaxListingQuantity = 1000

func AuthReq(req *dto.AuthRequest) error {
	if req.Username == "" {
		return UsernameIsRequired
	}

	if req.Password == "" {
		return PasswordIsRequired
	}

	if len(req.Password) < 5 {
		return PasswordIsTooShort
	}

	return nil
}

func ClaimReq(req *dto.ClaimRequest) error {
	if req.CollectibleID == "" {
		return CollectibleIDIsRequired
	}

	return nil
}

func SendOffchainReq(req *dto.SendOffchainRequest) error {
	if req.CollectibleID == "" {
		return CollectibleIDIsRequired
	}

	if req.RecipientUsername == "" {
		return RecipientIsRequired
	}

	if req.Amount < 1 {
		return AmountIsInvalid
	}

	return nil
}

func CreateListingReq(req *dto.CreateListingRequest) error {
	if req.CollectibleID == "" {
		return CollectibleIDIsRequired
	}

	if req.Price < 1 || req.Price > MaxPrice {
		return PriceIsInvalid
	}

	if req.Quantity < 1 || req.Quantity > MaxListingQuantity {
		return QuantityIsInvalid
	}

	return nil
}

func BuyReq(req *dto.BuyRequest) error {
	if req.ListingID == "" {
		return ListingIDIsRequired
	}

	return nil
}

func CancelReq(req *dto.CancelRequest) error {
	if req.ListingID == "" {
		return ListingIDIsRequired
	}

	return nil
}

func SetWalletReq(req *dto.SetWalletRequest) error {
	if req.WalletAddress == "" {
		return WalletAddressIsRequired
	}

	return nil
}

func AirdropReq(req *dto.AirdropRequest) error {
	if req.Username == "" {
		return UsernameIsRequired
	}

	if req.Count < 1 {
		return CountIsInvalid
	}

	return nil
}
