// Package airdrop implements the per-request transfer pipeline:
// validate, check eligibility, select an asset, submit the transfer,
// and commit the outcome to the ledger.
package airdrop

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-airdrop/internal/adapter"
	"github.com/feral-file/ff-airdrop/internal/chain"
	"github.com/feral-file/ff-airdrop/internal/domain"
	"github.com/feral-file/ff-airdrop/internal/eligibility"
	"github.com/feral-file/ff-airdrop/internal/logger"
	"github.com/feral-file/ff-airdrop/internal/messaging"
	"github.com/feral-file/ff-airdrop/internal/metrics"
	"github.com/feral-file/ff-airdrop/internal/store"
	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

// Outcome classifies how a distribution request terminated
type Outcome string

const (
	// OutcomeRecorded means the transfer was submitted and the ledger record committed
	OutcomeRecorded Outcome = "recorded"
	// OutcomeRejectedInvalid means the request failed validation; nothing was touched
	OutcomeRejectedInvalid Outcome = "rejected_invalid"
	// OutcomeRejectedAlreadyServed means the recipient already received a distribution
	OutcomeRejectedAlreadyServed Outcome = "rejected_already_served"
	// OutcomeFailedNoAsset means the distributor holds no asset for the contract;
	// the request aborts before any submission
	OutcomeFailedNoAsset Outcome = "failed_no_asset"
	// OutcomeFailedSubmission means asset selection or the on-chain call failed;
	// no ledger record was written, so the caller may safely retry
	OutcomeFailedSubmission Outcome = "failed_submission"
	// OutcomeRecordCommitFailed means the transfer succeeded on chain but the
	// ledger write did not; the recipient is no longer blocked by the ledger
	OutcomeRecordCommitFailed Outcome = "record_commit_failed"
)

// Success reports whether the outcome is the happy-path terminal state
func (o Outcome) Success() bool {
	return o == OutcomeRecorded
}

// Result is the caller-facing outcome of a distribution request
type Result struct {
	Outcome Outcome
	// Text is the human-readable outcome message
	Text string
	// TxHash is set when a transfer was submitted
	TxHash domain.TxHash
	// Err carries the underlying cause for failure outcomes
	Err error
}

// Orchestrator drives a single distribution request through the
// validate → eligibility → select → submit → record pipeline
type Orchestrator struct {
	engine      *eligibility.Engine
	store       store.Store
	chain       chain.Client
	publisher   messaging.Publisher
	clock       adapter.Clock
	distributor domain.Address
}

// NewOrchestrator creates a transfer orchestrator. The publisher may be
// nil, in which case no distribution events are emitted.
func NewOrchestrator(
	engine *eligibility.Engine,
	s store.Store,
	chainClient chain.Client,
	publisher messaging.Publisher,
	clock adapter.Clock,
	distributor domain.Address,
) *Orchestrator {
	return &Orchestrator{
		engine:      engine,
		store:       s,
		chain:       chainClient,
		publisher:   publisher,
		clock:       clock,
		distributor: distributor,
	}
}

// Execute runs the full pipeline for one request. Every internal error
// is converted into a Result; nothing propagates as an error to the
// caller. Requests are independent units of work: the only cross-request
// guarantee is that the ledger's constrained insert lets exactly one
// concurrent writer win per recipient/asset.
func (o *Orchestrator) Execute(ctx context.Context, req *domain.TransferRequest) *Result {
	// 1. Validate; no side effects on failure
	if err := ValidateTransferRequest(req); err != nil {
		return &Result{
			Outcome: OutcomeRejectedInvalid,
			Text:    err.Error(),
			Err:     err,
		}
	}

	recipient := req.Recipient.Normalize()
	contract := req.ContractAddress.Normalize()

	// 2. Eligibility gate. The cache may be briefly stale; a false
	// negative here is caught by the constrained insert in step 5.
	if o.engine.CheckEligibility(ctx, recipient) {
		metrics.DuplicateRejections.Inc()
		return &Result{
			Outcome: OutcomeRejectedAlreadyServed,
			Text:    o.engine.DescribeStatus(ctx, recipient),
			Err:     domain.ErrAlreadyServed,
		}
	}

	// 3. Select an asset: first-available pick, index 0 of the
	// distributor's holdings for this contract.
	tokenID, err := o.chain.OwnedToken(ctx, o.distributor, contract, 0)
	if err != nil {
		metrics.SubmissionFailures.Inc()
		logger.ErrorCtx(ctx, err,
			zap.String("contract", contract.String()),
			zap.String("distributor", o.distributor.String()))
		return &Result{
			Outcome: OutcomeFailedSubmission,
			Text:    fmt.Sprintf("Airdrop failed: %s", err),
			Err:     err,
		}
	}
	if tokenID.Zero() {
		logger.ErrorCtx(ctx, domain.ErrNoAssetAvailable,
			zap.String("contract", contract.String()),
			zap.String("distributor", o.distributor.String()))
		return &Result{
			Outcome: OutcomeFailedNoAsset,
			Text:    "Airdrop failed: the distributing account holds no asset for this contract.",
			Err:     domain.ErrNoAssetAvailable,
		}
	}

	// 4. Build and submit the transfer
	call := chain.BuildTransferCall(contract, o.distributor, recipient, tokenID)
	txHash, err := o.chain.SubmitTransfer(ctx, call)
	if err != nil {
		metrics.SubmissionFailures.Inc()
		logger.ErrorCtx(ctx, err,
			zap.String("recipient", recipient.String()),
			zap.String("contract", contract.String()),
			zap.String("token_id", tokenID.String()))
		return &Result{
			Outcome: OutcomeFailedSubmission,
			Text:    fmt.Sprintf("Airdrop failed: %s", err),
			Err:     err,
		}
	}

	// 5. Commit the ledger record. The transfer already happened: a
	// failure here is a chain/ledger divergence and must stay loud.
	hash := txHash.String()
	record := &schema.DistributionRecord{
		ID:                   uuid.NewString(),
		RecipientAddress:     recipient.String(),
		AssetContractAddress: contract.String(),
		TokenID:              tokenID.String(),
		TxHash:               &hash,
		RoomID:               req.Context.RoomID,
		AgentID:              req.Context.AgentID,
		Raw:                  datatypes.JSON(req.Raw),
		CreatedAt:            o.clock.Now().UTC(),
	}

	inserted, err := o.store.RecordDistribution(ctx, record)
	if err != nil || !inserted {
		metrics.LedgerDivergences.Inc()
		if err == nil {
			err = domain.ErrRecordCommitFailed
		}
		logger.ErrorCtx(ctx, err,
			zap.String("recipient", recipient.String()),
			zap.String("contract", contract.String()),
			zap.String("token_id", tokenID.String()),
			zap.String("tx_hash", hash),
			zap.Bool("constraint_rejected", !inserted))
		return &Result{
			Outcome: OutcomeRecordCommitFailed,
			Text:    fmt.Sprintf("The transfer was submitted (tx %s) but recording it failed. Operators have been notified.", hash),
			TxHash:  txHash,
			Err:     domain.ErrRecordCommitFailed,
		}
	}

	metrics.DistributionsRecorded.Inc()
	o.engine.MarkServed(recipient)
	o.publishEvent(ctx, record)

	logger.InfoCtx(ctx, "Distribution recorded",
		zap.String("record_id", record.ID),
		zap.String("recipient", recipient.String()),
		zap.String("token_id", tokenID.String()),
		zap.String("tx_hash", hash))

	return &Result{
		Outcome: OutcomeRecorded,
		Text:    fmt.Sprintf("Airdrop complete: token %s sent to %s (tx %s).", tokenID, recipient, hash),
		TxHash:  txHash,
	}
}

// publishEvent emits the distribution event best-effort; a publish
// failure never fails the request
func (o *Orchestrator) publishEvent(ctx context.Context, record *schema.DistributionRecord) {
	if o.publisher == nil {
		return
	}

	event := &domain.DistributionEvent{
		RecordID:        record.ID,
		Recipient:       domain.Address(record.RecipientAddress),
		ContractAddress: domain.Address(record.AssetContractAddress),
		TokenID:         domain.TokenID(record.TokenID),
		RoomID:          record.RoomID,
		AgentID:         record.AgentID,
		Timestamp:       record.CreatedAt.Unix(),
	}
	if record.TxHash != nil {
		event.TxHash = domain.TxHash(*record.TxHash)
	}

	if err := o.publisher.PublishDistribution(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish distribution event",
			zap.Error(err),
			zap.String("record_id", record.ID))
	}
}
