package blockedtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"theyool/models"
)

type memBlockedRepo struct {
	created []*models.BlockedTime
	ids     map[string]bool
}

func newMemBlockedRepo() *memBlockedRepo {
	return &memBlockedRepo{ids: map[string]bool{}}
}

func (m *memBlockedRepo) Create(ctx context.Context, block *models.BlockedTime) error {
	block.ID = "blk-1"
	m.created = append(m.created, block)
	m.ids[block.ID] = true
	return nil
}

func (m *memBlockedRepo) List(ctx context.Context, filters models.BlockedTimeFilters) ([]models.BlockedTime, error) {
	var out []models.BlockedTime
	for _, b := range m.created {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBlockedRepo) ListForDates(ctx context.Context, from, to string) ([]models.BlockedTime, error) {
	return m.List(ctx, models.BlockedTimeFilters{})
}

func (m *memBlockedRepo) Delete(ctx context.Context, id string) error {
	if !m.ids[id] {
		return mongo.ErrNoDocuments
	}
	delete(m.ids, id)
	return nil
}

func TestCreateDateBlock(t *testing.T) {
	repo := newMemBlockedRepo()
	svc := &DefaultBlockedTimeService{Repo: repo}

	block, err := svc.Create(context.Background(), CreateInput{
		BlockType:   models.BlockTypeDate,
		BlockedDate: "2026-03-05",
		Reason:      "공휴일",
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, block.ID)
	assert.Empty(t, block.BlockedTimeStart, "date blocks carry no time range")
	assert.Empty(t, block.BlockedTimeEnd)
	require.Len(t, repo.created, 1)
}

func TestCreateTimeSlotBlock(t *testing.T) {
	svc := &DefaultBlockedTimeService{Repo: newMemBlockedRepo()}

	block, err := svc.Create(context.Background(), CreateInput{
		BlockType:        models.BlockTypeTimeSlot,
		BlockedDate:      "2026-03-05",
		BlockedTimeStart: "10:00",
		BlockedTimeEnd:   "12:00",
		OfficeLocation:   "천안",
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00", block.BlockedTimeStart)
	assert.Equal(t, "12:00", block.BlockedTimeEnd)
	assert.Equal(t, "천안", block.OfficeLocation)
}

func TestCreateRejectsUnknownBlockType(t *testing.T) {
	svc := &DefaultBlockedTimeService{Repo: newMemBlockedRepo()}

	_, err := svc.Create(context.Background(), CreateInput{
		BlockType:   models.BlockType("holiday"),
		BlockedDate: "2026-03-05",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := &DefaultBlockedTimeService{Repo: newMemBlockedRepo()}

	for _, date := range []string{"", "05-03-2026", "2026/03/05", "2026-13-01"} {
		_, err := svc.Create(context.Background(), CreateInput{
			BlockType:   models.BlockTypeDate,
			BlockedDate: date,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "date %q", date)
	}
}

func TestCreateTimeSlotRequiresBothTimes(t *testing.T) {
	svc := &DefaultBlockedTimeService{Repo: newMemBlockedRepo()}

	for _, in := range []CreateInput{
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05", BlockedTimeStart: "10:00"},
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05", BlockedTimeEnd: "12:00"},
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05"},
	} {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingRange)
	}
}

func TestCreateRejectsInvertedOrEmptyRange(t *testing.T) {
	repo := newMemBlockedRepo()
	svc := &DefaultBlockedTimeService{Repo: repo}

	for _, in := range []CreateInput{
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05", BlockedTimeStart: "12:00", BlockedTimeEnd: "10:00"},
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05", BlockedTimeStart: "10:00", BlockedTimeEnd: "10:00"},
		// A range wrapping past midnight reads as inverted and is rejected.
		{BlockType: models.BlockTypeTimeSlot, BlockedDate: "2026-03-05", BlockedTimeStart: "23:00", BlockedTimeEnd: "01:00"},
	} {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
	assert.Empty(t, repo.created)
}

func TestCreateRejectsMalformedTimes(t *testing.T) {
	svc := &DefaultBlockedTimeService{Repo: newMemBlockedRepo()}

	_, err := svc.Create(context.Background(), CreateInput{
		BlockType:        models.BlockTypeTimeSlot,
		BlockedDate:      "2026-03-05",
		BlockedTimeStart: "10am",
		BlockedTimeEnd:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAllowsOverlappingBlocks(t *testing.T) {
	repo := newMemBlockedRepo()
	svc := &DefaultBlockedTimeService{Repo: repo}

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), CreateInput{
			BlockType:        models.BlockTypeTimeSlot,
			BlockedDate:      "2026-03-05",
			BlockedTimeStart: "10:00",
			BlockedTimeEnd:   "12:00",
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.created, 2, "duplicate rules are accepted, the resolver unions them")
}

func TestDelete(t *testing.T) {
	repo := newMemBlockedRepo()
	svc := &DefaultBlockedTimeService{Repo: repo}

	block, err := svc.Create(context.Background(), CreateInput{
		BlockType:   models.BlockTypeDate,
		BlockedDate: "2026-03-05",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), block.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), block.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
}
