package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theyool/models"
)

type fakeEmailSender struct {
	configured bool
	err        error
	sentTo     []string
	subjects   []string
}

func (f *fakeEmailSender) Configured() bool { return f.configured }

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, to)
	f.subjects = append(f.subjects, subject)
	return nil
}

type fakeSMSSender struct {
	configured bool
	err        error
	sentTo     []string
	texts      []string
}

func (f *fakeSMSSender) Configured() bool { return f.configured }

func (f *fakeSMSSender) Send(ctx context.Context, to, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, to)
	f.texts = append(f.texts, text)
	return nil
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:             "bk-1",
		Type:           models.BookingTypeVisit,
		Status:         models.BookingStatusPending,
		Name:           "김민수",
		Phone:          "010-1234-5678",
		Email:          "minsu@example.com",
		PreferredDate:  "2026-03-04",
		PreferredTime:  "10:30",
		OfficeLocation: "천안",
	}
}

func newDispatcher(t *testing.T, email EmailSender, sms SMSSender, alertPhone string) *DefaultNotificationService {
	t.Helper()
	svc, err := NewDefaultNotificationService(email, sms, alertPhone)
	require.NoError(t, err)
	return svc
}

func TestNewDispatcherRejectsNilSenders(t *testing.T) {
	_, err := NewDefaultNotificationService(nil, &fakeSMSSender{}, "")
	assert.Error(t, err)
	_, err = NewDefaultNotificationService(&fakeEmailSender{}, nil, "")
	assert.Error(t, err)
}

func TestDispatchBothChannelsSent(t *testing.T) {
	email := &fakeEmailSender{configured: true}
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, email, sms, "")

	result := svc.Dispatch(context.Background(), models.EventBookingConfirmed, sampleBooking())

	assert.True(t, result.EmailSent)
	assert.True(t, result.SMSSent)
	assert.True(t, result.Success)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, models.OutcomeSent, result.Attempts[0].Outcome)
	assert.Equal(t, models.OutcomeSent, result.Attempts[1].Outcome)
	assert.Equal(t, []string{"minsu@example.com"}, email.sentTo)
	assert.Equal(t, []string{"01012345678"}, sms.sentTo, "phone normalized before send")
}

func TestDispatchEmailFailureIsolatedFromSMS(t *testing.T) {
	email := &fakeEmailSender{configured: true, err: errors.New("provider 500")}
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, email, sms, "")

	result := svc.Dispatch(context.Background(), models.EventBookingConfirmed, sampleBooking())

	assert.False(t, result.EmailSent)
	assert.True(t, result.SMSSent)
	assert.True(t, result.Success, "one delivered channel is enough")
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, models.OutcomeFailed, result.Attempts[0].Outcome)
	assert.Equal(t, "provider 500", result.Attempts[0].Error)
	assert.Equal(t, models.OutcomeSent, result.Attempts[1].Outcome)
}

func TestDispatchBothChannelsFail(t *testing.T) {
	email := &fakeEmailSender{configured: true, err: errors.New("email down")}
	sms := &fakeSMSSender{configured: true, err: errors.New("sms down")}
	svc := newDispatcher(t, email, sms, "")

	result := svc.Dispatch(context.Background(), models.EventBookingCancelled, sampleBooking())

	assert.False(t, result.Success)
	assert.Equal(t, models.OutcomeFailed, result.Attempts[0].Outcome)
	assert.Equal(t, models.OutcomeFailed, result.Attempts[1].Outcome)
}

func TestDispatchSkipsEmailWithoutAddress(t *testing.T) {
	email := &fakeEmailSender{configured: true}
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, email, sms, "")

	booking := sampleBooking()
	booking.Email = ""
	result := svc.Dispatch(context.Background(), models.EventBookingConfirmed, booking)

	assert.Equal(t, models.OutcomeSkipped, result.Attempts[0].Outcome)
	assert.Empty(t, email.sentTo)
	assert.True(t, result.Success, "SMS alone still succeeds")
}

func TestDispatchSkipsUnconfiguredChannels(t *testing.T) {
	svc := newDispatcher(t, &fakeEmailSender{}, &fakeSMSSender{}, "")

	result := svc.Dispatch(context.Background(), models.EventBookingConfirmed, sampleBooking())

	assert.False(t, result.Success)
	assert.Equal(t, models.OutcomeSkipped, result.Attempts[0].Outcome)
	assert.Equal(t, models.OutcomeSkipped, result.Attempts[1].Outcome)
}

func TestDispatchCreatedEventAlertsOffice(t *testing.T) {
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, &fakeEmailSender{configured: true}, sms, "010-9999-0000")

	svc.Dispatch(context.Background(), models.EventBookingCreated, sampleBooking())

	require.Len(t, sms.sentTo, 1)
	assert.Equal(t, "01099990000", sms.sentTo[0])
	assert.Contains(t, sms.texts[0], "새 상담 신청", "office alert body")
}

func TestDispatchCreatedEventFallsBackToClient(t *testing.T) {
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, &fakeEmailSender{configured: true}, sms, "")

	svc.Dispatch(context.Background(), models.EventBookingCreated, sampleBooking())

	require.Len(t, sms.sentTo, 1)
	assert.Equal(t, "01012345678", sms.sentTo[0])
}

func TestDispatchConfirmedEventMessagesClient(t *testing.T) {
	sms := &fakeSMSSender{configured: true}
	svc := newDispatcher(t, &fakeEmailSender{configured: true}, sms, "010-9999-0000")

	svc.Dispatch(context.Background(), models.EventBookingConfirmed, sampleBooking())

	require.Len(t, sms.sentTo, 1)
	assert.Equal(t, "01012345678", sms.sentTo[0], "only the created event goes to the office")
}

func TestEmailContentIncludesBookingDetails(t *testing.T) {
	subject, html := EmailContent(models.EventBookingConfirmed, sampleBooking())

	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "김민수")
	assert.Contains(t, html, "2026-03-04")
	assert.Contains(t, html, "10:30")
}
