package create_appointment

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
	created      *domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = 100
	f.created = &stored
	return &stored, nil
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// monday 2025-11-03, «сейчас» за два дня до даты записи
var (
	testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
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
	uc := NewUseCase(biz, exc, appt, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		BusinessID:             1,
		CustomerID:             7,
		Date:                   testDate,
		StartTime:              "10:00",
		ServiceDurationMinutes: 60,
		ServiceName:            "Full grooming",
		PetName:                ptr.Ptr("Rex"),
	}
}

// --- Тесты ---

func TestExecute_CreatesAppointment(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		apptRepo,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)

	appt := resp.Appointment
	assert.Equal(t, int64(100), appt.ID)
	assert.Equal(t, int64(1), appt.BusinessID)
	assert.Equal(t, int64(7), appt.CustomerID)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
	assert.Equal(t, types.TimeString("10:00"), appt.StartTime)
	// Конец интервала: старт + длительность услуги (буфер в EndTime не входит)
	assert.Equal(t, types.TimeString("11:00"), appt.EndTime)
	assert.Equal(t, 60, appt.DurationMinutes)
	assert.Equal(t, "Full grooming", appt.ServiceName)
	assert.NotNil(t, apptRepo.created)
}

func TestExecute_SlotOccupied(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				BusinessID: 1,
				Date:       testDate,
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

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, apptRepo.created, "rejected booking must not reach the repository")
}

func TestExecute_SlotBlockedByException(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{exceptions: []domain.AvailabilityException{
			{
				Type:      domain.ExceptionBlock,
				StartDate: testDate,
				EndDate:   testDate,
				IsAllDay:  true,
			},
		}},
		apptRepo,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBlocked)
	assert.Nil(t, apptRepo.created)
}

func TestExecute_TooSoonToBook(t *testing.T) {
	settings := testSettings()
	// Двух дней между «сейчас» и датой записи не хватает
	settings.MinBookingNoticeHours = 72

	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: settings},
		&fakeExceptionRepo{},
		apptRepo,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooSoonToBook)
	assert.Nil(t, apptRepo.created)
}

func TestExecute_OffGridTime(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		apptRepo,
	)

	req := validRequest()
	req.StartTime = "10:10"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Nil(t, apptRepo.created)
}

func TestExecute_DateBeyondAdvanceWindow(t *testing.T) {
	settings := testSettings()
	settings.MaxBookingAdvanceDays = 1

	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: settings},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{businessErr: businessRepo.ErrBusinessNotFound},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_SettingsNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settingsErr: businessRepo.ErrSettingsNotFound},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeBusinessRepo{business: testBusiness(), settings: testSettings()},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{},
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer id", func(r *Request) { r.CustomerID = 0 }},
		{"blank service name", func(r *Request) { r.ServiceName = "   " }},
		{"non-positive duration", func(r *Request) { r.ServiceDurationMinutes = -30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
