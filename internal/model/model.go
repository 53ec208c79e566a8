package model

import (
	"github.com/google/uuid"
)

const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

const (
	ViaAirdrop        = "airdrop"
	ViaStarterPack    = "starter-pack"
	ViaClaimed        = "claimed"
	ViaOffchainSend   = "offchain_send"
	ViaMarketplaceBuy = "marketplace_buy"
	ViaXBonus         = "x-bonus"
)

const (
	ListingActive    = "active"
	ListingSold      = "sold"
	ListingCancelled = "cancelled"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Password          string    `json:"password"`
	AccountNumber     int64     `json:"accountNumber"`
	Points            int       `json:"points"`
	IsAdmin           bool      `json:"isAdmin"`
	IsFounder         bool      `json:"isFounder"`
	HasClaimedStarter bool      `json:"hasClaimedStarter"`
	WalletAddress     *string   `json:"walletAddress,omitempty"`
}

type Collectible struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Rarity        string    `json:"rarity"`
	MaxSupply     int       `json:"maxSupply"`
	CurrentSupply int       `json:"currentSupply"`
}
