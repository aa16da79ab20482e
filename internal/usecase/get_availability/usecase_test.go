package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patitas-app/availability-service/internal/domain"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
	"github.com/patitas-app/availability-service/pkg/ptr"
	"github.com/patitas-app/availability-service/pkg/types"
)

// --- Фейки зависимостей ---

type fakeBusinessRepo struct {
	business    *domain.Business
	settings    *domain.AppointmentSettings
	businessErr error
	settingsErr error
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	if f.businessErr != nil {
		return nil, f.businessErr
	}
	return f.business, nil
}

func (f *fakeBusinessRepo) GetSettings(_ context.Context, _ int64) (*domain.AppointmentSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

type fakeExceptionRepo struct {
	exceptions []domain.AvailabilityException
	err        error
}

func (f *fakeExceptionRepo) GetByBusinessAndRange(_ context.Context, _ int64, _, _ time.Time) ([]domain.AvailabilityException, error) {
	return f.exceptions, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.BusinessAppointmentsFilter
	err          error
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Тестовые данные ---

// monday 2025-11-03, «сейчас» утро того же дня
var (
	testMonday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	testNow    = time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
)

func testBusiness() *domain.Business {
	var week domain.WeeklyHours
	week[time.Sunday] = domain.DayHours{Closed: true}
	week[time.Saturday] = domain.DayHours{Closed: true}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		week[wd] = domain.DayHours{
			Open:  ptr.Ptr(types.TimeString("09:00")),
			Close: ptr.Ptr(types.TimeString("17:00")),
		}
	}
	return &domain.Business{
		ID:          1,
		Name:        "Patitas Grooming",
		OwnerUserID: 42,
		Timezone:    "UTC",
		Hours:       week,
	}
}

func testSettings() *domain.AppointmentSettings {
	return &domain.AppointmentSettings{
		BusinessID:             1,
		SlotDurationMinutes:    30,
		BufferTimeMinutes:      0,
		MaxAppointmentsPerSlot: 1,
		MinBookingNoticeHours:  0,
		MaxBookingAdvanceDays:  30,
	}
}

func newTestUseCase(biz *fakeBusinessRepo, exc *fakeExceptionRepo, appt *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(biz, exc, appt, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// --- Тесты ---

func TestExecute_ExplicitRange(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	end := testMonday.AddDate(0, 0, 6)
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		EndDate:                &end,
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)

	// Один элемент на каждую дату диапазона, включая закрытые выходные
	require.Len(t, resp.Days, 7)
	assert.Equal(t, testMonday, resp.StartDate)
	assert.Equal(t, end, resp.EndDate)

	assert.True(t, resp.Days[0].IsOpen)
	assert.False(t, resp.Days[5].IsOpen, "saturday is closed but still present")
	assert.False(t, resp.Days[6].IsOpen, "sunday is closed but still present")
}

func TestExecute_DefaultRange(t *testing.T) {
	settings := testSettings()
	// Окно записи шире дефолтного диапазона, ограничение не сработает
	settings.MaxBookingAdvanceDays = 90

	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: settings},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, testMonday.AddDate(0, 0, DefaultRangeDays), resp.EndDate)
	assert.Len(t, resp.Days, DefaultRangeDays+1)
}

func TestExecute_RangeClampedToAdvanceWindow(t *testing.T) {
	settings := testSettings()
	settings.MaxBookingAdvanceDays = 3

	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: settings},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	end := testMonday.AddDate(0, 0, 14)
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		EndDate:                &end,
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)

	// Конец диапазона обрезается до сегодня + max_booking_advance_days
	assert.Equal(t, testMonday.AddDate(0, 0, 3), resp.EndDate)
	assert.Len(t, resp.Days, 4)
}

func TestExecute_StartBeyondAdvanceWindow(t *testing.T) {
	settings := testSettings()
	settings.MaxBookingAdvanceDays = 3

	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: settings},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday.AddDate(0, 0, 10),
		ServiceDurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_EndBeforeStart(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	end := testMonday.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		EndDate:                &end,
		ServiceDurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AppointmentsReduceAvailability(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				BusinessID: 1,
				Date:       testMonday,
				StartTime:  "10:00",
				EndTime:    "11:00",
				Status:     domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		apptRepo,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		EndDate:                &testMonday,
		ServiceDurationMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	// 15 слотов на сетке, 3 из них пересекают запись 10:00-11:00
	assert.Equal(t, 12, resp.Days[0].TotalAvailable)
	assert.False(t, apptRepo.lastFilter.IncludeInactive, "cancelled appointments must be excluded")
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{businessErr: businessRepo.ErrBusinessNotFound},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		ServiceDurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_SettingsNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settingsErr: businessRepo.ErrSettingsNotFound},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:             1,
		StartDate:              testMonday,
		ServiceDurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero business id", &Request{StartDate: testMonday, ServiceDurationMinutes: 60}},
		{"zero start date", &Request{BusinessID: 1, ServiceDurationMinutes: 60}},
		{"non-positive duration", &Request{BusinessID: 1, StartDate: testMonday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
