package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// HasServed checks whether any distribution record exists for the recipient.
// The business rule is per-recipient, so this matches on recipient alone,
// not the full (recipient, contract, token) triple.
func (s *pgStore) HasServed(ctx context.Context, recipient string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.DistributionRecord{}).
		Where("recipient_address = ?", recipient).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check distribution records: %w", err)
	}

	return count > 0, nil
}

// RecordDistribution inserts the record with ON CONFLICT DO NOTHING on
// the composite unique index. Concurrent writers for the same triple
// race on this single statement; the loser sees zero affected rows.
func (s *pgStore) RecordDistribution(ctx context.Context, record *schema.DistributionRecord) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "recipient_address"},
			{Name: "asset_contract_address"},
			{Name: "token_id"},
		},
		DoNothing: true,
	}).Create(record)

	if result.Error != nil {
		return false, fmt.Errorf("failed to record distribution: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// History retrieves distribution records matching the filter, newest first
func (s *pgStore) History(ctx context.Context, filter HistoryFilter) ([]schema.DistributionRecord, error) {
	query := s.db.WithContext(ctx).Model(&schema.DistributionRecord{})

	if filter.Recipient != "" {
		query = query.Where("recipient_address = ?", filter.Recipient)
	}
	if filter.RoomID != "" {
		query = query.Where("room_id = ?", filter.RoomID)
	}
	if filter.AgentID != "" {
		query = query.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var records []schema.DistributionRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get distribution history: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregate counts for the filtered scope
func (s *pgStore) Stats(ctx context.Context, filter StatsFilter) (DistributionStats, error) {
	query := s.db.WithContext(ctx).Model(&schema.DistributionRecord{})

	if filter.RoomID != "" {
		query = query.Where("room_id = ?", filter.RoomID)
	}
	if filter.AgentID != "" {
		query = query.Where("agent_id = ?", filter.AgentID)
	}

	var stats DistributionStats
	if err := query.Count(&stats.TotalCount).Error; err != nil {
		return DistributionStats{}, fmt.Errorf("failed to count distributions: %w", err)
	}

	if err := query.Distinct("recipient_address").Count(&stats.UniqueRecipientCount).Error; err != nil {
		return DistributionStats{}, fmt.Errorf("failed to count unique recipients: %w", err)
	}

	return stats, nil
}
