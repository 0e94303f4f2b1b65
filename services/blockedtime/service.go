// Package blockedtime manages administrator-authored availability blocks.
package blockedtime

import (
	"context"
	"errors"
	"time"

	blockedRepo "theyool/database/repository/blocked"
	"theyool/models"
	"theyool/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRange rejects a time_slot block whose start is not
	// strictly before its end.
	ErrInvalidRange = errors.New("blocked time start must be before end")

	// ErrMissingRange rejects a time_slot block without both times.
	ErrMissingRange = errors.New("blocked_time_start and blocked_time_end are required for time_slot blocks")

	// ErrInvalidInput rejects a malformed block type, date or time.
	ErrInvalidInput = errors.New("invalid blocked time input")

	// ErrNotFound means no blocked time exists with the given id.
	ErrNotFound = errors.New("blocked time not found")
)

// CreateInput is an admin-authored block submission.
type CreateInput struct {
	BlockType        models.BlockType
	BlockedDate      string
	BlockedTimeStart string
	BlockedTimeEnd   string
	OfficeLocation   string
	Reason           string
	CreatedBy        string
}

// BlockedTimeService validates and stores blocked times. Blocks are
// never updated in place; admins delete and recreate instead.
type BlockedTimeService interface {
	Create(ctx context.Context, input CreateInput) (*models.BlockedTime, error)
	List(ctx context.Context, filters models.BlockedTimeFilters) ([]models.BlockedTime, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBlockedTimeService is the production implementation.
type DefaultBlockedTimeService struct {
	Repo blockedRepo.BlockedTimeRepository
}

func (s *DefaultBlockedTimeService) Create(ctx context.Context, input CreateInput) (*models.BlockedTime, error) {
	if input.BlockType != models.BlockTypeDate && input.BlockType != models.BlockTypeTimeSlot {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", input.BlockedDate); err != nil {
		return nil, ErrInvalidInput
	}

	block := &models.BlockedTime{
		BlockType:      input.BlockType,
		BlockedDate:    input.BlockedDate,
		OfficeLocation: input.OfficeLocation,
		Reason:         input.Reason,
		CreatedBy:      input.CreatedBy,
	}

	if input.BlockType == models.BlockTypeTimeSlot {
		if input.BlockedTimeStart == "" || input.BlockedTimeEnd == "" {
			return nil, ErrMissingRange
		}
		if !validTime(input.BlockedTimeStart) || !validTime(input.BlockedTimeEnd) {
			return nil, ErrInvalidInput
		}
		if input.BlockedTimeStart >= input.BlockedTimeEnd {
			return nil, ErrInvalidRange
		}
		block.BlockedTimeStart = input.BlockedTimeStart
		block.BlockedTimeEnd = input.BlockedTimeEnd
	}

	// Overlap against existing blocks is deliberately not checked: the
	// resolver unions all applicable blocks, so redundant rules are
	// harmless.
	if err := s.Repo.Create(ctx, block); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("blocked time created",
		zap.String("blockID", block.ID),
		zap.String("blockType", string(block.BlockType)),
		zap.String("date", block.BlockedDate),
		zap.String("office", block.OfficeLocation),
		zap.String("createdBy", block.CreatedBy))
	return block, nil
}

func (s *DefaultBlockedTimeService) List(ctx context.Context, filters models.BlockedTimeFilters) ([]models.BlockedTime, error) {
	return s.Repo.List(ctx, filters)
}

func (s *DefaultBlockedTimeService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if blockedRepo.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
