package recorder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	filterAll = "all"
)

// ListFilter filters the transaction history of a wallet. Page is 1-based.
type ListFilter struct {
	Category string
	Type     string
	Page     int
	Limit    int
}

// TransactionPage is a page of transaction history
type TransactionPage struct {
	Transactions []schema.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
	HasMore      bool                 `json:"hasMore"`
}

// Receipt is the verifiable summary of a transaction record
type Receipt struct {
	TransactionID string                     `json:"transactionId"`
	Type          domain.TransactionType     `json:"type"`
	Category      domain.TransactionCategory `json:"category"`
	Item          string                     `json:"item"`
	Amount        string                     `json:"amount"`
	Fee           string                     `json:"fee"`
	Token         string                     `json:"token"`
	From          *string                    `json:"from"`
	To            *string                    `json:"to"`
	Hash          *string                    `json:"hash"`
	Status        domain.TransactionStatus   `json:"status"`
	Timestamp     string                     `json:"timestamp"`
	Block         *uint64                    `json:"block"`
	Confirmations uint64                     `json:"confirmations"`
}

// VerifiedReceipt is a receipt with the SHA-256 digest of its canonical JSON
type VerifiedReceipt struct {
	Receipt   Receipt `json:"receipt"`
	Canonical string  `json:"canonical"`
	Digest    string  `json:"digest"`
}

// ManualInput is a manually entered record
type ManualInput struct {
	Type       domain.TransactionType     `json:"type"`
	Category   domain.TransactionCategory `json:"category"`
	Item       string                     `json:"item"`
	Amount     *decimal.Decimal           `json:"amount"`
	Token      string                     `json:"token"`
	FromWallet string                     `json:"fromWallet"`
	ToWallet   string                     `json:"toWallet"`
	Hash       string                     `json:"hash"`
	Fee        decimal.Decimal            `json:"fee"`
	Notes      string                     `json:"notes"`
	Status     domain.TransactionStatus   `json:"status"`
	Details    Details                    `json:"details"`
}

// normalizeCategory maps a user supplied category to its stored form.
// "all" and the empty string disable the filter.
func normalizeCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, filterAll) {
		return "", nil
	}

	for _, c := range []domain.TransactionCategory{
		domain.CategoryMarketplace,
		domain.CategoryStaking,
		domain.CategoryFarming,
		domain.CategoryHeroes,
		domain.CategoryPacks,
		domain.CategoryOther,
	} {
		if strings.EqualFold(category, string(c)) {
			return string(c), nil
		}
	}

	return "", domain.NewValidationError("invalid category: %s", category)
}

func normalizeType(txType string) string {
	txType = strings.TrimSpace(txType)
	if strings.EqualFold(txType, filterAll) {
		return ""
	}
	return txType
}

// ownedBy reports whether the record belongs to the wallet
func ownedBy(tx *schema.Transaction, wallet string) bool {
	return (tx.FromWallet != nil && strings.EqualFold(*tx.FromWallet, wallet)) ||
		(tx.ToWallet != nil && strings.EqualFold(*tx.ToWallet, wallet))
}

// presentFor signs the amount from the point of view of the wallet.
// Records stored positive with the wallet as payer are outflows.
func presentFor(tx *schema.Transaction, wallet string) {
	if tx.FromWallet != nil && strings.EqualFold(*tx.FromWallet, wallet) && tx.Amount.IsPositive() {
		tx.Amount = tx.Amount.Neg()
	}
}

// ListTransactions returns a page of a wallet's history newest first
func (r *recorder) ListTransactions(ctx context.Context, wallet string, filter ListFilter) (*TransactionPage, error) {
	if wallet == "" {
		return nil, domain.NewValidationError("wallet address is required")
	}

	category, err := normalizeCategory(filter.Category)
	if err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	txs, total, err := r.store.ListTransactions(ctx, store.TransactionFilter{
		Wallet:   wallet,
		Category: category,
		Type:     normalizeType(filter.Type),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	for i := range txs {
		presentFor(&txs[i], wallet)
	}
	if txs == nil {
		txs = []schema.Transaction{}
	}

	return &TransactionPage{
		Transactions: txs,
		Total:        total,
		Page:         page,
		Limit:        limit,
		HasMore:      int64(page*limit) < total,
	}, nil
}

// GetTransaction returns a record of the wallet. Records of other wallets are reported as missing.
func (r *recorder) GetTransaction(ctx context.Context, wallet, id string) (*schema.Transaction, error) {
	tx, err := r.store.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil || !ownedBy(tx, wallet) {
		return nil, domain.NewNotFoundError("transaction", id)
	}

	presentFor(tx, wallet)
	return tx, nil
}

// GetReceipt builds the receipt of a record and digests its canonical JSON
func (r *recorder) GetReceipt(ctx context.Context, wallet, id string) (*VerifiedReceipt, error) {
	tx, err := r.GetTransaction(ctx, wallet, id)
	if err != nil {
		return nil, err
	}

	receipt := Receipt{
		TransactionID: tx.ID,
		Type:          tx.Type,
		Category:      tx.Category,
		Item:          tx.Item,
		Amount:        tx.Amount.String(),
		Fee:           tx.Fee.String(),
		Token:         tx.Token,
		From:          tx.FromWallet,
		To:            tx.ToWallet,
		Hash:          tx.Hash,
		Status:        tx.Status,
		Timestamp:     tx.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if tx.Confirmation != nil {
		receipt.Status = tx.Confirmation.Status
		receipt.Block = tx.Confirmation.Block
		receipt.Confirmations = tx.Confirmation.Confirmations
	}

	data, err := r.json.Marshal(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}
	canonical, err := r.jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize receipt: %w", err)
	}
	sum := sha256.Sum256(canonical)

	return &VerifiedReceipt{
		Receipt:   receipt,
		Canonical: string(canonical),
		Digest:    hex.EncodeToString(sum[:]),
	}, nil
}

// CreateTransaction validates and appends a manually entered record
func (r *recorder) CreateTransaction(ctx context.Context, input ManualInput) (*schema.Transaction, error) {
	if strings.TrimSpace(string(input.Type)) == "" {
		return nil, domain.NewValidationError("type is required")
	}
	if input.Amount == nil {
		return nil, domain.NewValidationError("amount is required")
	}
	if strings.TrimSpace(input.Token) == "" {
		return nil, domain.NewValidationError("token is required")
	}
	if input.FromWallet == "" && input.ToWallet == "" {
		return nil, domain.NewValidationError("fromWallet or toWallet is required")
	}
	if input.Fee.IsNegative() {
		return nil, domain.NewValidationError("fee must not be negative")
	}

	category := domain.TransactionCategory(domain.DEFAULT_CATEGORY)
	if input.Category != "" {
		c, err := normalizeCategory(string(input.Category))
		if err != nil {
			return nil, err
		}
		if c != "" {
			category = domain.TransactionCategory(c)
		}
	}

	switch input.Status {
	case "", domain.TransactionStatusPending, domain.TransactionStatusConfirmed, domain.TransactionStatusFailed:
	default:
		return nil, domain.NewValidationError("invalid status: %s", input.Status)
	}

	item := input.Item
	if item == "" {
		item = string(input.Type)
	}

	return r.Record(ctx, Input{
		Type:       input.Type,
		Category:   category,
		Item:       item,
		Amount:     *input.Amount,
		Token:      input.Token,
		FromWallet: input.FromWallet,
		ToWallet:   input.ToWallet,
		Hash:       input.Hash,
		Fee:        input.Fee,
		Notes:      input.Notes,
		Status:     input.Status,
		Details:    input.Details,
	})
}
