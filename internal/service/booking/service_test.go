package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	"github.com/neumorstudio/plantillas-api/internal/service/availability"
	"github.com/neumorstudio/plantillas-api/internal/service/event"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
)

type fakeBookingRepo struct {
	created   []*model.Booking
	updated   []*model.Booking
	byID      map[uuid.UUID]*model.Booking
	forDay    []model.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = uuid.New()
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBookingRepo) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeBookingRepo) Update(ctx context.Context, b *model.Booking) error {
	f.updated = append(f.updated, b)
	return nil
}
func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeBookingRepo) List(ctx context.Context, websiteID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListForDay(ctx context.Context, websiteID uuid.UUID, date time.Time, professionalID *uuid.UUID) ([]model.Booking, error) {
	return f.forDay, nil
}

type fakeServiceRepo struct {
	byID map[uuid.UUID]*model.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *model.Service) error { return nil }
func (f *fakeServiceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	if svc, ok := f.byID[id]; ok {
		return svc, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeServiceRepo) GetMany(ctx context.Context, ids []uuid.UUID) ([]*model.Service, error) {
	var out []*model.Service
	for _, id := range ids {
		if svc, ok := f.byID[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, s *model.Service) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeServiceRepo) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) CreateCategory(ctx context.Context, c *model.ServiceCategory) error {
	return nil
}
func (f *fakeServiceRepo) ListCategories(ctx context.Context, websiteID uuid.UUID) ([]*model.ServiceCategory, error) {
	return nil, nil
}
func (f *fakeServiceRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error { return nil }

type fakeWebsiteRepo struct{ website *model.Website }

func (f *fakeWebsiteRepo) Create(ctx context.Context, w *model.Website) error { return nil }
func (f *fakeWebsiteRepo) Get(ctx context.Context, id uuid.UUID) (*model.Website, error) {
	return f.website, nil
}
func (f *fakeWebsiteRepo) GetBySlug(ctx context.Context, slug string) (*model.Website, error) {
	return f.website, nil
}
func (f *fakeWebsiteRepo) Update(ctx context.Context, w *model.Website) error { return nil }
func (f *fakeWebsiteRepo) List(ctx context.Context) ([]*model.Website, error) { return nil, nil }

type fakeHoursRepo struct {
	weekly []model.WeeklyHour
	slots  []model.HourSlot
}

func (f *fakeHoursRepo) UpsertWeeklyHour(ctx context.Context, wh *model.WeeklyHour) error {
	return nil
}
func (f *fakeHoursRepo) ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error) {
	return f.weekly, nil
}
func (f *fakeHoursRepo) CreateHourSlot(ctx context.Context, hs *model.HourSlot) error { return nil }
func (f *fakeHoursRepo) UpdateHourSlot(ctx context.Context, hs *model.HourSlot) error { return nil }
func (f *fakeHoursRepo) DeleteHourSlot(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeHoursRepo) GetHourSlot(ctx context.Context, id uuid.UUID) (*model.HourSlot, error) {
	return nil, errors.New("not found")
}
func (f *fakeHoursRepo) ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error) {
	return f.slots, nil
}

type fakeSpecialRepo struct{}

func (f *fakeSpecialRepo) Create(ctx context.Context, sd *model.SpecialDay) error { return nil }
func (f *fakeSpecialRepo) Get(ctx context.Context, id uuid.UUID) (*model.SpecialDay, error) {
	return nil, errors.New("not found")
}
func (f *fakeSpecialRepo) Update(ctx context.Context, sd *model.SpecialDay) error { return nil }
func (f *fakeSpecialRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (f *fakeSpecialRepo) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDay, error) {
	return nil, nil
}
func (f *fakeSpecialRepo) CreateSlot(ctx context.Context, s *model.SpecialDaySlot) error {
	return nil
}
func (f *fakeSpecialRepo) DeleteSlot(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeSpecialRepo) ListSlotsByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDaySlot, error) {
	return nil, nil
}

type fakeOutbox struct{ events []*model.OutboxEvent }

func (f *fakeOutbox) Create(ctx context.Context, e *model.OutboxEvent) error {
	f.events = append(f.events, e)
	return nil
}
func (f *fakeOutbox) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error {
	return nil
}
func (f *fakeOutbox) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fixture struct {
	websiteID uuid.UUID
	serviceID uuid.UUID
	repo      *fakeBookingRepo
	hours     *fakeHoursRepo
	outbox    *fakeOutbox
	svc       *Service
}

// Monday under the Monday=0 convention; "today" in all tests.
var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	websiteID := uuid.New()
	serviceID := uuid.New()

	repo := &fakeBookingRepo{byID: map[uuid.UUID]*model.Booking{}}
	hours := &fakeHoursRepo{
		weekly: []model.WeeklyHour{
			{WebsiteID: websiteID, DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
		},
	}
	services := &fakeServiceRepo{byID: map[uuid.UUID]*model.Service{
		serviceID: {
			Base:            model.Base{ID: serviceID},
			WebsiteID:       websiteID,
			Name:            "Corte",
			DurationMinutes: 30,
		},
	}}
	outbox := &fakeOutbox{}

	avail := availability.NewService(
		&fakeWebsiteRepo{website: &model.Website{Base: model.Base{ID: websiteID}, SlotStepMinutes: 15}},
		hours,
		&fakeSpecialRepo{},
		repo,
		services,
		time.Minute,
		nil,
	)

	svc := NewService(repo, services, avail, event.NewService(outbox), nil).
		WithNow(func() time.Time { return monday })

	return &fixture{
		websiteID: websiteID,
		serviceID: serviceID,
		repo:      repo,
		hours:     hours,
		outbox:    outbox,
		svc:       svc,
	}
}

func validRequest(f *fixture) *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		Date:          monday.Format(model.DateOnly),
		StartTime:     "10:00",
		ServiceIDs:    []uuid.UUID{f.serviceID},
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
	}
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.CreateBooking(context.Background(), f.websiteID, validRequest(f))
	require.NoError(t, err)

	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, 30, b.DurationMinutes)
	require.Len(t, f.repo.created, 1)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, model.EventBookingCreated, f.outbox.events[0].EventType)
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	f := newFixture(t)
	req := validRequest(f)
	req.Date = monday.AddDate(0, 0, -1).Format(model.DateOnly)

	_, err := f.svc.CreateBooking(context.Background(), f.websiteID, req)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestCreateBookingRejectsOutsideHours(t *testing.T) {
	f := newFixture(t)
	req := validRequest(f)
	req.StartTime = "16:45" // 30 min would run past 17:00

	_, err := f.svc.CreateBooking(context.Background(), f.websiteID, req)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	f.repo.forDay = []model.Booking{
		{WebsiteID: f.websiteID, Date: monday, StartTime: "10:15", DurationMinutes: 30, Status: model.BookingStatusConfirmed},
	}

	_, err := f.svc.CreateBooking(context.Background(), f.websiteID, validRequest(f))
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestCreateBookingAllowsBackToBack(t *testing.T) {
	f := newFixture(t)
	f.repo.forDay = []model.Booking{
		{WebsiteID: f.websiteID, Date: monday, StartTime: "09:30", DurationMinutes: 30, Status: model.BookingStatusConfirmed},
	}

	_, err := f.svc.CreateBooking(context.Background(), f.websiteID, validRequest(f))
	require.NoError(t, err)
}

func TestCreateBookingMapsSlotTakenToConflict(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = repository.ErrSlotTaken

	_, err := f.svc.CreateBooking(context.Background(), f.websiteID, validRequest(f))
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
	assert.Empty(t, f.outbox.events)
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.byID[id] = &model.Booking{
		Base:   model.Base{ID: id},
		Status: model.BookingStatusConfirmed,
	}

	b, err := f.svc.CancelBooking(context.Background(), id, "customer request")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, b.Status)
	require.NotNil(t, b.CancelReason)
	assert.Equal(t, "customer request", *b.CancelReason)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, model.EventBookingCancelled, f.outbox.events[0].EventType)
}

func TestCancelBookingTwiceFails(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.byID[id] = &model.Booking{
		Base:   model.Base{ID: id},
		Status: model.BookingStatusCancelled,
	}

	_, err := f.svc.CancelBooking(context.Background(), id, "again")
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestCompleteBookingRequiresConfirmed(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.byID[id] = &model.Booking{
		Base:   model.Base{ID: id},
		Status: model.BookingStatusPending,
	}

	_, err := f.svc.CompleteBooking(context.Background(), id)
	require.Error(t, err)
}

func TestConfirmBooking(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.byID[id] = &model.Booking{
		Base:   model.Base{ID: id},
		Status: model.BookingStatusPending,
	}

	b, err := f.svc.ConfirmBooking(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
}

func TestDeleteBookingOnlyWhenCancelled(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.byID[id] = &model.Booking{
		Base:   model.Base{ID: id},
		Status: model.BookingStatusConfirmed,
	}

	err := f.svc.DeleteBooking(context.Background(), id)
	require.Error(t, err)

	f.repo.byID[id].Status = model.BookingStatusCancelled
	require.NoError(t, f.svc.DeleteBooking(context.Background(), id))
}
