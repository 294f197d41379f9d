package hours

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neumorstudio/plantillas-api/internal/model"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
)

type fakeRepo struct {
	weekly  map[int]*model.WeeklyHour
	slots   map[uuid.UUID]*model.HourSlot
	upserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		weekly: map[int]*model.WeeklyHour{},
		slots:  map[uuid.UUID]*model.HourSlot{},
	}
}

func (f *fakeRepo) UpsertWeeklyHour(ctx context.Context, wh *model.WeeklyHour) error {
	f.upserts++
	f.weekly[wh.DayOfWeek] = wh
	return nil
}

func (f *fakeRepo) ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error) {
	var out []model.WeeklyHour
	for _, wh := range f.weekly {
		out = append(out, *wh)
	}
	return out, nil
}

func (f *fakeRepo) CreateHourSlot(ctx context.Context, hs *model.HourSlot) error {
	hs.ID = uuid.New()
	f.slots[hs.ID] = hs
	return nil
}

func (f *fakeRepo) UpdateHourSlot(ctx context.Context, hs *model.HourSlot) error {
	f.slots[hs.ID] = hs
	return nil
}

func (f *fakeRepo) DeleteHourSlot(ctx context.Context, id uuid.UUID) error {
	delete(f.slots, id)
	return nil
}

func (f *fakeRepo) GetHourSlot(ctx context.Context, id uuid.UUID) (*model.HourSlot, error) {
	if hs, ok := f.slots[id]; ok {
		return hs, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error) {
	var out []model.HourSlot
	for _, hs := range f.slots {
		out = append(out, *hs)
	}
	return out, nil
}

type fakeInvalidator struct {
	calls []uuid.UUID
}

func (f *fakeInvalidator) InvalidateSchedule(websiteID uuid.UUID) {
	f.calls = append(f.calls, websiteID)
}

func TestPutWeeklyHours(t *testing.T) {
	repo := newFakeRepo()
	inv := &fakeInvalidator{}
	svc := NewService(repo, inv)
	websiteID := uuid.New()

	saved, err := svc.PutWeeklyHours(context.Background(), websiteID, []model.PutWeeklyHourRequest{
		{DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
		{DayOfWeek: 5, IsOpen: false},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, 2, repo.upserts)
	assert.Equal(t, []uuid.UUID{websiteID}, inv.calls)
}

func TestPutWeeklyHoursRejectsInvertedRange(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.PutWeeklyHours(context.Background(), uuid.New(), []model.PutWeeklyHourRequest{
		{DayOfWeek: 0, IsOpen: true, OpenTime: "17:00", CloseTime: "09:00"},
	})
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestPutWeeklyHoursRejectsDuplicateDay(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.PutWeeklyHours(context.Background(), uuid.New(), []model.PutWeeklyHourRequest{
		{DayOfWeek: 2, IsOpen: true, OpenTime: "09:00", CloseTime: "12:00"},
		{DayOfWeek: 2, IsOpen: true, OpenTime: "13:00", CloseTime: "17:00"},
	})
	require.Error(t, err)
}

func TestCreateHourSlotRejectsOverlap(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	websiteID := uuid.New()

	_, err := svc.CreateHourSlot(context.Background(), websiteID, &model.CreateHourSlotRequest{
		DayOfWeek: 0, OpenTime: "09:00", CloseTime: "13:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateHourSlot(context.Background(), websiteID, &model.CreateHourSlotRequest{
		DayOfWeek: 0, OpenTime: "12:00", CloseTime: "16:00",
	})
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)

	// Same times on another day are fine.
	_, err = svc.CreateHourSlot(context.Background(), websiteID, &model.CreateHourSlotRequest{
		DayOfWeek: 1, OpenTime: "12:00", CloseTime: "16:00",
	})
	require.NoError(t, err)
}

func TestUpdateHourSlotInvalidatesSchedule(t *testing.T) {
	repo := newFakeRepo()
	inv := &fakeInvalidator{}
	svc := NewService(repo, inv)
	websiteID := uuid.New()

	slot, err := svc.CreateHourSlot(context.Background(), websiteID, &model.CreateHourSlotRequest{
		DayOfWeek: 0, OpenTime: "09:00", CloseTime: "13:00",
	})
	require.NoError(t, err)

	closeTime := "14:00"
	updated, err := svc.UpdateHourSlot(context.Background(), slot.ID, &model.UpdateHourSlotRequest{
		CloseTime: &closeTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", updated.CloseTime)
	assert.Len(t, inv.calls, 2)
}
