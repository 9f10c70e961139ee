package recorder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/metrics"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

// ReportInconsistency journals a partial success condition. It never fails the caller.
func (r *recorder) ReportInconsistency(ctx context.Context, kind domain.InconsistencyKind, wallet, reference string, payload interface{}, cause error) int64 {
	metrics.IncInconsistency(string(kind))

	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("wallet", wallet),
		zap.String("reference", reference),
	}

	entry := &schema.Inconsistency{
		Kind:          kind,
		WalletAddress: wallet,
		Reference:     reference,
		Status:        domain.InconsistencyStatusOpen,
		CreatedAt:     r.clock.Now().UTC(),
	}
	if !kind.IsOffChain() {
		entry.Status = domain.InconsistencyStatusManual
	}
	if cause != nil {
		entry.Error = cause.Error()
	}

	if payload != nil {
		data, err := r.json.Marshal(payload)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal inconsistency payload: %w", errors.Join(cause, err)), fields...)
			return 0
		}
		entry.Payload = datatypes.JSON(data)
	}

	if err := r.store.CreateInconsistency(ctx, entry); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to journal inconsistency: %w", errors.Join(cause, err)),
			append(fields, zap.ByteString("payload", entry.Payload))...)
		return 0
	}

	logger.ErrorCtx(ctx, fmt.Errorf("journaled inconsistency: %w", cause),
		append(fields, zap.Int64("inconsistencyID", entry.ID))...)

	return entry.ID
}
