package rest

import (
	"time"

	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

// airdropResponse is the caller-facing outcome payload. Text always
// carries the human-readable message; Content.Error is set only when
// the operation did not succeed.
type airdropResponse struct {
	Text    string           `json:"text"`
	Content *responseContent `json:"content,omitempty"`
}

// responseContent wraps the machine-readable part of an outcome
type responseContent struct {
	Error *errorDetail `json:"error,omitempty"`
}

// statusResponse carries the distribution status text for a recipient
type statusResponse struct {
	Address string `json:"address"`
	Served  bool   `json:"served"`
	Text    string `json:"text"`
}

// distributionRecordDTO is the REST representation of a ledger record
type distributionRecordDTO struct {
	ID              string    `json:"id"`
	Recipient       string    `json:"recipient"`
	ContractAddress string    `json:"contract_address"`
	TokenID         string    `json:"token_id"`
	TxHash          string    `json:"tx_hash,omitempty"`
	RoomID          string    `json:"room_id,omitempty"`
	AgentID         string    `json:"agent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// historyResponse is the paginated history payload
type historyResponse struct {
	Records []distributionRecordDTO `json:"records"`
}

// statsResponse is the aggregate statistics payload
type statsResponse struct {
	TotalCount           int64 `json:"total_count"`
	UniqueRecipientCount int64 `json:"unique_recipient_count"`
}

// toDistributionRecordDTO converts a ledger record to its REST representation
func toDistributionRecordDTO(record schema.DistributionRecord) distributionRecordDTO {
	dto := distributionRecordDTO{
		ID:              record.ID,
		Recipient:       record.RecipientAddress,
		ContractAddress: record.AssetContractAddress,
		TokenID:         record.TokenID,
		RoomID:          record.RoomID,
		AgentID:         record.AgentID,
		CreatedAt:       record.CreatedAt,
	}
	if record.TxHash != nil {
		dto.TxHash = *record.TxHash
	}
	return dto
}
