package usecase

import (
	"context"
	"sync"

	"stackbnb/internal/data/entity"
	"stackbnb/internal/dto/request"
	"stackbnb/internal/dto/response"
	"stackbnb/internal/integrations/mailer"
	"stackbnb/internal/integrations/payments"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	args := m.Called(ctx, orderID)
	if b := args.Get(0); b != nil {
		return b.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByGuestEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, email, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, vendorID, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByHostID(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, hostID, limit, offset)
	if b := args.Get(0); b != nil {
		return b.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CommissionTotalByHostID(ctx context.Context, hostID uuid.UUID) (float64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, bookingID uuid.UUID, reason *string) (int64, error) {
	args := m.Called(ctx, bookingID, reason)
	return args.Get(0).(int64), args.Error(1)
}

type mockVendorRepo struct {
	mock.Mock
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *entity.VendorProfile) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *mockVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.VendorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*entity.VendorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) FindPublished(ctx context.Context, limit, offset int) ([]*entity.VendorProfile, error) {
	args := m.Called(ctx, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*entity.VendorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) CountPublished(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVendorRepo) Update(ctx context.Context, vendor *entity.VendorProfile) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

type mockExperienceRepo struct {
	mock.Mock
}

func (m *mockExperienceRepo) Create(ctx context.Context, exp *entity.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *mockExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*entity.Experience), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExperienceRepo) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.Experience, error) {
	args := m.Called(ctx, vendorID)
	if e := args.Get(0); e != nil {
		return e.([]*entity.Experience), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExperienceRepo) FindPublished(ctx context.Context, limit, offset int) ([]*entity.Experience, error) {
	args := m.Called(ctx, limit, offset)
	if e := args.Get(0); e != nil {
		return e.([]*entity.Experience), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExperienceRepo) CountPublished(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockExperienceRepo) Update(ctx context.Context, exp *entity.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *mockExperienceRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockPromoRepo struct {
	mock.Mock
}

func (m *mockPromoRepo) Create(ctx context.Context, promo *entity.PromoCode) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *mockPromoRepo) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	args := m.Called(ctx, code)
	if p := args.Get(0); p != nil {
		return p.(*entity.PromoCode), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromoRepo) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.PromoCode, error) {
	args := m.Called(ctx, hostID)
	if p := args.Get(0); p != nil {
		return p.([]*entity.PromoCode), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromoRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRefunder struct {
	mock.Mock
}

func (m *mockRefunder) RefundSession(ctx context.Context, sessionID, reason string) (*payments.RefundResult, error) {
	args := m.Called(ctx, sessionID, reason)
	if r := args.Get(0); r != nil {
		return r.(*payments.RefundResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html string) (*mailer.SendResponse, error) {
	args := m.Called(ctx, to, subject, html)
	if r := args.Get(0); r != nil {
		return r.(*mailer.SendResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingNotify captures dispatched notifications so tests can wait for
// the asynchronous fan-out without racing on a mock.
type recordingNotify struct {
	mu       sync.Mutex
	requests []request.NotifyRequest
}

func (r *recordingNotify) Dispatch(ctx context.Context, req *request.NotifyRequest) (*response.NotifyResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, *req)
	return &response.NotifyResponse{Success: true, EmailID: "email-test"}, nil
}

func (r *recordingNotify) sent() []request.NotifyRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]request.NotifyRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

func (r *recordingNotify) sentTypes() []string {
	var types []string
	for _, req := range r.sent() {
		types = append(types, req.Type)
	}
	return types
}
