package dto

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ClaimRequest struct {
	CollectibleID string `json:"collectibleId"`
}

type SendOffchainRequest struct {
	CollectibleID     string `json:"collectibleId"`
	RecipientUsername string `json:"recipientUsername"`
	Amount            int    `json:"amount"`
}

type CreateListingRequest struct {
	CollectibleID string `json:"collectibleId"`
	Price         int    `json:"price"`
	Quantity      int    `json:"quantity"`
}

type BuyRequest struct {
	ListingID string `json:"listingId"`
}

type CancelRequest struct {
	ListingID string `json:"listingId"`
}

type SetWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type AirdropRequest struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

type InventoryItem struct {
	CollectibleID string `json:"collectibleId"`
	Name          string `json:"name"`
	Rarity        string `json:"rarity"`
	Quantity      int    `json:"quantity"`
	IsClaimed     bool   `json:"isClaimed"`
	ReceivedVia   string `json:"receivedVia"`
}

type InventoryResponse struct {
	Items []InventoryItem `json:"items"`
}

type Listing struct {
	ID            string `json:"id"`
	Seller        string `json:"seller"`
	CollectibleID string `json:"collectibleId"`
	Name          string `json:"name"`
	Rarity        string `json:"rarity"`
	Price         int    `json:"price"`
	Quantity      int    `json:"quantity"`
}

type MarketplaceResponse struct {
	Listings []Listing `json:"listings"`
}
