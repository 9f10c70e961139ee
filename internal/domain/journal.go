package domain

import "time"

// Journal payloads carry what the sweeper needs to finish a step. Kinds whose payload is
// the entity itself (transaction_record, staking_position, sale_settlement_record,
// pack_purchase) store the database row.

// InstantSellCompletionPayload is the payload of an instant_sell_completion entry
type InstantSellCompletionPayload struct {
	Wallet        string    `json:"wallet"`
	AssetType     AssetType `json:"assetType"`
	AssetID       int64     `json:"assetId"`
	TransactionID string    `json:"transactionId"`
	Payout        string    `json:"payout"`
	Hash          string    `json:"hash"`
}

// SaleSettlementPayload is the payload of a sale_settlement entry
type SaleSettlementPayload struct {
	ListingID   string    `json:"listingId"`
	Buyer       string    `json:"buyer"`
	Seller      string    `json:"seller"`
	Price       string    `json:"price"`
	PaymentHash string    `json:"paymentHash"`
	SoldAt      time.Time `json:"soldAt"`
}

// SellerPayoutPayload is the payload of a seller_payout entry
type SellerPayoutPayload struct {
	ListingID string `json:"listingId"`
	Seller    string `json:"seller"`
	Amount    string `json:"amount"`
}

// UnstakeRewardMintPayload is the payload of an unstake_reward_mint entry
type UnstakeRewardMintPayload struct {
	Wallet     string `json:"wallet"`
	PositionID int64  `json:"positionId"`
	Amount     string `json:"amount"`
}

// LevelUpChargePayload is the payload of a level_up_charge entry
type LevelUpChargePayload struct {
	Wallet    string    `json:"wallet"`
	AssetType AssetType `json:"assetType"`
	AssetID   int64     `json:"assetId"`
	Cost      string    `json:"cost"`
	Hash      string    `json:"hash"`
}

// ReservationTarget is the kind of entity held by a reservation
type ReservationTarget string

const (
	ReservationListing            ReservationTarget = "listing"
	ReservationStakingPosition    ReservationTarget = "staking_position"
	ReservationClaimCheckpoint    ReservationTarget = "claim_checkpoint"
	ReservationHarvestCheckpoints ReservationTarget = "harvest_checkpoints"
	ReservationAsset              ReservationTarget = "asset"
)

// CheckpointRestore is an accrual checkpoint to move back to its value before a reservation
type CheckpointRestore struct {
	ID       int64     `json:"id"`
	Previous time.Time `json:"previous"`
}

// ReservationReleasePayload is the payload of a reservation_release entry. It describes a
// reservation taken before a ledger call that was rejected, so releasing it moves no value.
type ReservationReleasePayload struct {
	Target          ReservationTarget   `json:"target"`
	Wallet          string              `json:"wallet"`
	ListingID       string              `json:"listingId,omitempty"`
	PositionID      int64               `json:"positionId,omitempty"`
	AssetType       AssetType           `json:"assetType,omitempty"`
	AssetID         int64               `json:"assetId,omitempty"`
	ReservedVersion int64               `json:"reservedVersion,omitempty"`
	ReservedAt      time.Time           `json:"reservedAt"`
	Checkpoints     []CheckpointRestore `json:"checkpoints,omitempty"`
}

// UnsettledPaymentPayload is the payload of an unsettled_payment entry: a ledger call that
// was submitted but not confirmed, so its reservation is kept until an operator checks the hash.
type UnsettledPaymentPayload struct {
	Wallet    string            `json:"wallet"`
	Operation string            `json:"operation"`
	Target    ReservationTarget `json:"target"`
	EntityID  string            `json:"entityId"`
	Amount    string            `json:"amount"`
	Hash      string            `json:"hash"`
}
