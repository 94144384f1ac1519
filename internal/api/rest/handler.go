package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-airdrop/internal/airdrop"
	"github.com/feral-file/ff-airdrop/internal/domain"
	"github.com/feral-file/ff-airdrop/internal/eligibility"
	"github.com/feral-file/ff-airdrop/internal/store"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// RequestAirdrop runs a transfer request through the full pipeline
	// POST /api/v1/airdrops
	RequestAirdrop(c *gin.Context)

	// GetStatus returns the distribution status text for a recipient
	// GET /api/v1/airdrops/status/:address
	GetStatus(c *gin.Context)

	// GetHistory retrieves distribution records, newest first
	// GET /api/v1/airdrops/history?recipient=<address>&room_id=<id>&agent_id=<id>&limit=<limit>
	GetHistory(c *gin.Context)

	// GetStats retrieves aggregate distribution counts
	// GET /api/v1/airdrops/stats?room_id=<id>&agent_id=<id>
	GetStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	orchestrator *airdrop.Orchestrator
	engine       *eligibility.Engine
	store        store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(orchestrator *airdrop.Orchestrator, engine *eligibility.Engine, s store.Store) Handler {
	return &handler{
		orchestrator: orchestrator,
		engine:       engine,
		store:        s,
	}
}

// outcomeStatus maps a pipeline outcome to an HTTP status and error code.
// The recorded outcome has no error code; callers must not ask for one.
func outcomeStatus(outcome airdrop.Outcome) (int, ErrorCode) {
	switch outcome {
	case airdrop.OutcomeRejectedInvalid:
		return http.StatusBadRequest, errCodeValidationFailed
	case airdrop.OutcomeRejectedAlreadyServed:
		return http.StatusConflict, errCodeAlreadyServed
	case airdrop.OutcomeFailedNoAsset:
		return http.StatusUnprocessableEntity, errCodeNoAssetAvailable
	case airdrop.OutcomeFailedSubmission:
		return http.StatusBadGateway, errCodeSubmissionFailed
	case airdrop.OutcomeRecordCommitFailed:
		return http.StatusInternalServerError, errCodeRecordCommitFailed
	default:
		return http.StatusInternalServerError, errCodeInternalError
	}
}

// RequestAirdrop runs a transfer request through the full pipeline
func (h *handler) RequestAirdrop(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "Failed to read request body", err.Error())
		return
	}

	var req domain.TransferRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, airdropResponse{
			Text: "The airdrop request could not be parsed.",
			Content: &responseContent{
				Error: &errorDetail{
					Code:    errCodeBadRequest,
					Message: err.Error(),
				},
			},
		})
		return
	}
	req.Raw = raw

	result := h.orchestrator.Execute(c.Request.Context(), &req)

	if result.Outcome.Success() {
		c.JSON(http.StatusOK, airdropResponse{Text: result.Text})
		return
	}

	status, code := outcomeStatus(result.Outcome)
	message := result.Text
	if result.Err != nil {
		message = result.Err.Error()
	}
	c.JSON(status, airdropResponse{
		Text: result.Text,
		Content: &responseContent{
			Error: &errorDetail{
				Code:    code,
				Message: message,
			},
		},
	})
}

// GetStatus returns the distribution status text for a recipient
func (h *handler) GetStatus(c *gin.Context) {
	address := domain.Address(c.Param("address"))
	if !address.Valid() {
		respondBadRequest(c, "Invalid recipient address")
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, statusResponse{
		Address: address.Normalize().String(),
		Served:  h.engine.CheckEligibility(ctx, address),
		Text:    h.engine.DescribeStatus(ctx, address),
	})
}

// GetHistory retrieves distribution records, newest first
func (h *handler) GetHistory(c *gin.Context) {
	filter := store.HistoryFilter{
		RoomID:  c.Query("room_id"),
		AgentID: c.Query("agent_id"),
		Limit:   defaultHistoryLimit,
	}

	if recipient := c.Query("recipient"); recipient != "" {
		address := domain.Address(recipient)
		if !address.Valid() {
			respondBadRequest(c, "Invalid recipient address")
			return
		}
		filter.Recipient = address.Normalize().String()
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			respondValidationError(c, "limit must be a positive integer")
			return
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}
		filter.Limit = limit
	}

	records, err := h.store.History(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to get distribution history")
		return
	}

	dtos := make([]distributionRecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDistributionRecordDTO(record))
	}

	c.JSON(http.StatusOK, historyResponse{Records: dtos})
}

// GetStats retrieves aggregate distribution counts
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context(), store.StatsFilter{
		RoomID:  c.Query("room_id"),
		AgentID: c.Query("agent_id"),
	})
	if err != nil {
		respondInternalError(c, err, "Failed to get distribution stats")
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		TotalCount:           stats.TotalCount,
		UniqueRecipientCount: stats.UniqueRecipientCount,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
