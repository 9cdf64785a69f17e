package usecase

import (
	"context"
	"errors"
	"testing"

	"stackbnb/internal/dto/request"
	"stackbnb/internal/integrations/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const opsInbox = "bookings@stackbnb.example"

func newNotifyServiceForTest(t *testing.T) (NotifyService, *mockMailer) {
	t.Helper()
	m := new(mockMailer)
	return NewNotifyService(m, opsInbox, zap.NewNop()), m
}

func confirmationRequest() *request.NotifyRequest {
	return &request.NotifyRequest{
		Type:           "guest_confirmation",
		GuestName:      "Dana",
		GuestEmail:     "dana@example.com",
		ExperienceName: "Sunset Kayak Tour",
		OrderID:        "STAY-20250107-120000-0001",
		BookingDate:    "2025-01-12",
		BookingTime:    "18:00",
		Guests:         2,
		TotalAmount:    150,
		Currency:       "USD",
	}
}

func TestDispatch_GuestConfirmation(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, "dana@example.com", mock.Anything, mock.Anything).
		Return(&mailer.SendResponse{ID: "email-1"}, nil)

	resp, err := svc.Dispatch(context.Background(), confirmationRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "email-1", resp.EmailID)
	assert.Equal(t, "dana@example.com", resp.RecipientMail)

	// Exactly one email per dispatch
	m.AssertNumberOfCalls(t, "Send", 1)

	subject := m.Calls[0].Arguments.String(2)
	assert.Contains(t, subject, "Sunset Kayak Tour")

	html := m.Calls[0].Arguments.String(3)
	assert.Contains(t, html, "Dana")
	assert.Contains(t, html, "STAY-20250107-120000-0001")
}

func TestDispatch_UnknownType(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	req := confirmationRequest()
	req.Type = "carrier_pigeon"

	_, err := svc.Dispatch(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown notification type")
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_MissingRequiredFields(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	req := confirmationRequest()
	req.GuestEmail = ""
	req.ExperienceName = ""

	_, err := svc.Dispatch(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Contains(t, err.Error(), "guest_email")
	assert.Contains(t, err.Error(), "experience_name")
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_BookingGoesToOps(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, opsInbox, mock.Anything, mock.Anything).
		Return(&mailer.SendResponse{ID: "email-2"}, nil)

	req := confirmationRequest()
	req.Type = "booking"

	resp, err := svc.Dispatch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, opsInbox, resp.RecipientMail)
	m.AssertExpectations(t)
}

func TestDispatch_GuestCancellationMentionsRefund(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, "dana@example.com", mock.Anything, mock.Anything).
		Return(&mailer.SendResponse{ID: "email-3"}, nil)

	req := confirmationRequest()
	req.Type = "guest_cancellation"
	req.Reason = "change of plans"
	req.GuestCancellation = true

	_, err := svc.Dispatch(context.Background(), req)

	require.NoError(t, err)

	html := m.Calls[0].Arguments.String(3)
	assert.Contains(t, html, "5-10 business days")
	assert.Contains(t, html, "change of plans")
	assert.NotContains(t, html, "by the vendor")
}

func TestDispatch_VendorCancellation(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, "ops@bayadventures.example", mock.Anything, mock.Anything).
		Return(&mailer.SendResponse{ID: "email-4"}, nil)

	req := confirmationRequest()
	req.Type = "vendor_cancellation"
	req.VendorName = "Bay Adventures"
	req.VendorEmail = "ops@bayadventures.example"
	req.GuestCancellation = true

	resp, err := svc.Dispatch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ops@bayadventures.example", resp.RecipientMail)

	html := m.Calls[0].Arguments.String(3)
	assert.Contains(t, html, "Bay Adventures")
	assert.Contains(t, html, "cancelled by the guest")
	// The vendor sees the payout they are losing
	assert.Contains(t, html, "150.00 USD")
	assert.Contains(t, html, "available again")
}

func TestDispatch_VendorCancellationRequiresAmount(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	req := confirmationRequest()
	req.Type = "vendor_cancellation"
	req.VendorName = "Bay Adventures"
	req.VendorEmail = "ops@bayadventures.example"
	req.TotalAmount = 0

	_, err := svc.Dispatch(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Contains(t, err.Error(), "total_amount")
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_VendorInitiatedCancellationWording(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&mailer.SendResponse{ID: "email-5"}, nil)

	vendorReq := confirmationRequest()
	vendorReq.Type = "vendor_cancellation"
	vendorReq.VendorName = "Bay Adventures"
	vendorReq.VendorEmail = "ops@bayadventures.example"

	_, err := svc.Dispatch(context.Background(), vendorReq)
	require.NoError(t, err)

	vendorHTML := m.Calls[0].Arguments.String(3)
	assert.NotContains(t, vendorHTML, "by the guest")
	assert.Contains(t, vendorHTML, "150.00 USD")

	// The guest is told the vendor cancelled on them
	guestReq := confirmationRequest()
	guestReq.Type = "guest_cancellation"

	_, err = svc.Dispatch(context.Background(), guestReq)
	require.NoError(t, err)

	guestHTML := m.Calls[1].Arguments.String(3)
	assert.Contains(t, guestHTML, "cancelled by the vendor")
}

func TestDispatch_ProviderFailure(t *testing.T) {
	svc, m := newNotifyServiceForTest(t)

	m.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("provider unavailable"))

	_, err := svc.Dispatch(context.Background(), confirmationRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "guest_confirmation")
}

func TestDispatch_AllTypesHaveTemplates(t *testing.T) {
	for notifType := range requiredFields {
		assert.NotNil(t, emailTemplates[notifType], "missing template for %s", notifType)
	}
	assert.Len(t, emailTemplates, len(requiredFields))
}
