package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

type fakeWebsites struct {
	website *model.Website
}

func (f *fakeWebsites) Create(ctx context.Context, w *model.Website) error { return nil }
func (f *fakeWebsites) Get(ctx context.Context, id uuid.UUID) (*model.Website, error) {
	if f.website == nil {
		return nil, errors.New("not found")
	}
	return f.website, nil
}
func (f *fakeWebsites) GetBySlug(ctx context.Context, slug string) (*model.Website, error) {
	return f.website, nil
}
func (f *fakeWebsites) Update(ctx context.Context, w *model.Website) error { return nil }
func (f *fakeWebsites) List(ctx context.Context) ([]*model.Website, error) { return nil, nil }

type fakeHours struct {
	weekly    []model.WeeklyHour
	slots     []model.HourSlot
	listCalls int
}

func (f *fakeHours) UpsertWeeklyHour(ctx context.Context, wh *model.WeeklyHour) error { return nil }
func (f *fakeHours) ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error) {
	f.listCalls++
	return f.weekly, nil
}
func (f *fakeHours) CreateHourSlot(ctx context.Context, hs *model.HourSlot) error { return nil }
func (f *fakeHours) UpdateHourSlot(ctx context.Context, hs *model.HourSlot) error { return nil }
func (f *fakeHours) DeleteHourSlot(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeHours) GetHourSlot(ctx context.Context, id uuid.UUID) (*model.HourSlot, error) {
	return nil, errors.New("not found")
}
func (f *fakeHours) ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error) {
	return f.slots, nil
}

type fakeSpecials struct {
	days  []model.SpecialDay
	slots []model.SpecialDaySlot
}

func (f *fakeSpecials) Create(ctx context.Context, sd *model.SpecialDay) error { return nil }
func (f *fakeSpecials) Get(ctx context.Context, id uuid.UUID) (*model.SpecialDay, error) {
	return nil, errors.New("not found")
}
func (f *fakeSpecials) Update(ctx context.Context, sd *model.SpecialDay) error { return nil }
func (f *fakeSpecials) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (f *fakeSpecials) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDay, error) {
	return f.days, nil
}
func (f *fakeSpecials) CreateSlot(ctx context.Context, s *model.SpecialDaySlot) error { return nil }
func (f *fakeSpecials) DeleteSlot(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeSpecials) ListSlotsByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDaySlot, error) {
	return f.slots, nil
}

type fakeBookings struct {
	forDay []model.Booking
	err    error
}

func (f *fakeBookings) Create(ctx context.Context, b *model.Booking) error { return nil }
func (f *fakeBookings) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return nil, errors.New("not found")
}
func (f *fakeBookings) Update(ctx context.Context, b *model.Booking) error { return nil }
func (f *fakeBookings) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeBookings) List(ctx context.Context, websiteID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) ListForDay(ctx context.Context, websiteID uuid.UUID, date time.Time, professionalID *uuid.UUID) ([]model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forDay, nil
}

type fakeServices struct {
	byID map[uuid.UUID]*model.Service
}

func (f *fakeServices) Create(ctx context.Context, s *model.Service) error { return nil }
func (f *fakeServices) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	if svc, ok := f.byID[id]; ok {
		return svc, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeServices) GetMany(ctx context.Context, ids []uuid.UUID) ([]*model.Service, error) {
	var out []*model.Service
	for _, id := range ids {
		if svc, ok := f.byID[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}
func (f *fakeServices) Update(ctx context.Context, s *model.Service) error { return nil }
func (f *fakeServices) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeServices) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Service, error) {
	return nil, nil
}
func (f *fakeServices) CreateCategory(ctx context.Context, c *model.ServiceCategory) error {
	return nil
}
func (f *fakeServices) ListCategories(ctx context.Context, websiteID uuid.UUID) ([]*model.ServiceCategory, error) {
	return nil, nil
}
func (f *fakeServices) DeleteCategory(ctx context.Context, id uuid.UUID) error { return nil }

type fixture struct {
	websiteID uuid.UUID
	serviceID uuid.UUID
	websites  *fakeWebsites
	hours     *fakeHours
	specials  *fakeSpecials
	bookings  *fakeBookings
	services  *fakeServices
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	websiteID := uuid.New()
	serviceID := uuid.New()

	f := &fixture{
		websiteID: websiteID,
		serviceID: serviceID,
		websites: &fakeWebsites{website: &model.Website{
			Base:            model.Base{ID: websiteID},
			Name:            "Estudio Norte",
			SlotStepMinutes: 15,
		}},
		hours:    &fakeHours{},
		specials: &fakeSpecials{},
		bookings: &fakeBookings{},
		services: &fakeServices{byID: map[uuid.UUID]*model.Service{
			serviceID: {
				Base:            model.Base{ID: serviceID},
				WebsiteID:       websiteID,
				Name:            "Corte",
				DurationMinutes: 30,
			},
		}},
	}
	f.svc = NewService(f.websites, f.hours, f.specials, f.bookings, f.services, time.Minute, nil)
	return f
}

// Monday under the Monday=0 convention.
var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func TestGetSlotsSplitShiftWithBooking(t *testing.T) {
	f := newFixture(t)
	f.hours.slots = []model.HourSlot{
		{WebsiteID: f.websiteID, DayOfWeek: 0, OpenTime: "09:00", CloseTime: "13:00", SortOrder: 0, IsActive: true},
		{WebsiteID: f.websiteID, DayOfWeek: 0, OpenTime: "17:00", CloseTime: "21:00", SortOrder: 1, IsActive: true},
	}
	f.bookings.forDay = []model.Booking{
		{WebsiteID: f.websiteID, Date: monday, StartTime: "18:00", DurationMinutes: 30, Status: model.BookingStatusConfirmed},
	}

	slots, err := f.svc.GetSlots(context.Background(), f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.NoError(t, err)

	var disabled []string
	for _, s := range slots {
		if s.Disabled {
			disabled = append(disabled, s.Time)
		}
	}
	assert.Equal(t, []string{"17:45", "18:00", "18:15"}, disabled)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "20:30", slots[len(slots)-1].Time)
}

func TestGetSlotsClosedDayReturnsEmpty(t *testing.T) {
	f := newFixture(t)
	f.specials.days = []model.SpecialDay{
		{WebsiteID: f.websiteID, Date: monday, IsOpen: false},
	}
	f.hours.weekly = []model.WeeklyHour{
		{WebsiteID: f.websiteID, DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}

	slots, err := f.svc.GetSlots(context.Background(), f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGetSlotsFailsClosedOnBookingFetchError(t *testing.T) {
	f := newFixture(t)
	f.hours.weekly = []model.WeeklyHour{
		{WebsiteID: f.websiteID, DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}
	f.bookings.err = errors.New("connection refused")

	slots, err := f.svc.GetSlots(context.Background(), f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.Error(t, err)
	assert.Nil(t, slots)
}

func TestGetSlotsRejectsForeignService(t *testing.T) {
	f := newFixture(t)
	f.services.byID[f.serviceID].WebsiteID = uuid.New()

	_, err := f.svc.GetSlots(context.Background(), f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.Error(t, err)
}

func TestGetSlotsUsesScheduleCache(t *testing.T) {
	f := newFixture(t)
	f.hours.weekly = []model.WeeklyHour{
		{WebsiteID: f.websiteID, DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}

	ctx := context.Background()
	_, err := f.svc.GetSlots(ctx, f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.NoError(t, err)
	_, err = f.svc.GetSlots(ctx, f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.NoError(t, err)
	assert.Equal(t, 1, f.hours.listCalls)

	f.svc.InvalidateSchedule(f.websiteID)
	_, err = f.svc.GetSlots(ctx, f.websiteID, monday, nil, []uuid.UUID{f.serviceID})
	require.NoError(t, err)
	assert.Equal(t, 2, f.hours.listCalls)
}

func TestGetCalendarDisablesPastAndClosedDays(t *testing.T) {
	f := newFixture(t)
	f.hours.weekly = []model.WeeklyHour{
		{WebsiteID: f.websiteID, DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}
	f.svc.WithNow(func() time.Time { return monday })

	from := monday.AddDate(0, 0, -1) // Sunday
	to := monday.AddDate(0, 0, 1)    // Tuesday, no weekly row
	days, err := f.svc.GetCalendar(context.Background(), f.websiteID, from, to, nil)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.True(t, days[0].Disabled, "past day")
	assert.False(t, days[1].Disabled, "open monday")
	assert.True(t, days[2].Disabled, "uncovered weekday is closed")
}

func TestGetCalendarRejectsInvertedRange(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetCalendar(context.Background(), f.websiteID, monday, monday.AddDate(0, 0, -1), nil)
	require.Error(t, err)
}
