package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

func testAddress(seed string) string {
	return "0x" + strings.Repeat(seed, 64/len(seed))
}

func newRecord(recipient, contract, tokenID string) *schema.DistributionRecord {
	hash := "0x" + strings.Repeat("77", 32)
	return &schema.DistributionRecord{
		ID:                   uuid.NewString(),
		RecipientAddress:     recipient,
		AssetContractAddress: contract,
		TokenID:              tokenID,
		TxHash:               &hash,
		RoomID:               "room-1",
		AgentID:              "agent-1",
		Raw:                  datatypes.JSON([]byte(`{"recipient":"test"}`)),
		CreatedAt:            time.Now().UTC(),
	}
}

func TestRecordDistribution(t *testing.T) {
	cleanTable(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	recipient := testAddress("aa")
	contract := testAddress("bb")

	inserted, err := s.RecordDistribution(ctx, newRecord(recipient, contract, "1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	// The identical triple is rejected by the constraint, not an error
	inserted, err = s.RecordDistribution(ctx, newRecord(recipient, contract, "1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	// A different token for the same recipient and contract is a new row
	inserted, err = s.RecordDistribution(ctx, newRecord(recipient, contract, "2"))
	require.NoError(t, err)
	assert.True(t, inserted)

	var count int64
	require.NoError(t, testDB.Model(&schema.DistributionRecord{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// N concurrent writers race on the same triple; exactly one wins
func TestRecordDistributionConcurrentWriters(t *testing.T) {
	cleanTable(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	recipient := testAddress("cc")
	contract := testAddress("dd")

	const writers = 10
	var wg sync.WaitGroup
	results := make(chan bool, writers)
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := s.RecordDistribution(ctx, newRecord(recipient, contract, "1"))
			if err != nil {
				errs <- err
				return
			}
			results <- inserted
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent insert failed: %v", err)
	}

	winners := 0
	for inserted := range results {
		if inserted {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	var count int64
	require.NoError(t, testDB.Model(&schema.DistributionRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHasServed(t *testing.T) {
	cleanTable(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	recipient := testAddress("ee")

	served, err := s.HasServed(ctx, recipient)
	require.NoError(t, err)
	assert.False(t, served)

	inserted, err := s.RecordDistribution(ctx, newRecord(recipient, testAddress("bb"), "1"))
	require.NoError(t, err)
	require.True(t, inserted)

	// The rule is per recipient, any contract counts
	served, err = s.HasServed(ctx, recipient)
	require.NoError(t, err)
	assert.True(t, served)

	served, err = s.HasServed(ctx, testAddress("ff"))
	require.NoError(t, err)
	assert.False(t, served)
}

func TestHistoryOrderingAndFilters(t *testing.T) {
	cleanTable(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	recipient := testAddress("aa")
	contract := testAddress("bb")
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		record := newRecord(recipient, contract, fmt.Sprintf("%d", i))
		record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		inserted, err := s.RecordDistribution(ctx, record)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	other := newRecord(testAddress("cc"), contract, "9")
	other.RoomID = "room-2"
	inserted, err := s.RecordDistribution(ctx, other)
	require.NoError(t, err)
	require.True(t, inserted)

	// Newest first
	records, err := s.History(ctx, HistoryFilter{Recipient: recipient})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2", records[0].TokenID)
	assert.Equal(t, "1", records[1].TokenID)
	assert.Equal(t, "0", records[2].TokenID)

	// Limit caps the page
	records, err = s.History(ctx, HistoryFilter{Recipient: recipient, Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].TokenID)

	// Context filters partition without affecting other recipients
	records, err = s.History(ctx, HistoryFilter{RoomID: "room-2"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].TokenID)
}

func TestStats(t *testing.T) {
	cleanTable(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	recipientA := testAddress("aa")
	recipientB := testAddress("bb")
	contract := testAddress("cc")

	for i, recipient := range []string{recipientA, recipientA, recipientB} {
		record := newRecord(recipient, contract, fmt.Sprintf("%d", i))
		if i == 2 {
			record.RoomID = "room-2"
		}
		inserted, err := s.RecordDistribution(ctx, record)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	stats, err := s.Stats(ctx, StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
	assert.Equal(t, int64(2), stats.UniqueRecipientCount)

	stats, err = s.Stats(ctx, StatsFilter{RoomID: "room-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalCount)
	assert.Equal(t, int64(1), stats.UniqueRecipientCount)
}
