package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DistributionRecord represents the distribution_records table - one row
// per completed airdrop. The composite unique index on (recipient,
// contract, token) is the authoritative gate against double
// distribution; application-level eligibility checks are only a
// latency optimization in front of it.
type DistributionRecord struct {
	// ID is a generated unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// RecipientAddress is the address that received the asset
	RecipientAddress string `gorm:"column:recipient_address;not null;type:text;uniqueIndex:idx_distributions_recipient_contract_token,priority:1;index:idx_distributions_recipient"`
	// AssetContractAddress is the NFT contract the asset belongs to
	AssetContractAddress string `gorm:"column:asset_contract_address;not null;type:text;uniqueIndex:idx_distributions_recipient_contract_token,priority:2"`
	// TokenID is the asset identifier within the contract's namespace
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_distributions_recipient_contract_token,priority:3"`
	// TxHash is the on-chain transaction hash (nil until submission succeeded)
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// RoomID scopes history and statistics queries (not uniqueness)
	RoomID string `gorm:"column:room_id;type:text;index:idx_distributions_context,priority:1"`
	// AgentID scopes history and statistics queries (not uniqueness)
	AgentID string `gorm:"column:agent_id;type:text;index:idx_distributions_context,priority:2"`
	// Raw is the original extractor payload, kept for auditing
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the commit timestamp, used for newest-first ordering
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the DistributionRecord model
func (DistributionRecord) TableName() string {
	return "distribution_records"
}
