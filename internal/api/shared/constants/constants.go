package constants

const (
	DEFAULT_PAGE         = 1
	DEFAULT_PAGE_LIMIT   = 10
	MAX_PAGE_LIMIT       = 100
	MAX_REQUEST_BODY     = 1 << 20
	WALLET_PARAM         = "wallet"
	LISTING_ID_PARAM     = "listingId"
	TRANSACTION_ID_PARAM = "id"
)
