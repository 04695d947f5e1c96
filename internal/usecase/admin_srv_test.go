package usecase

import (
	"context"
	"fmt"
	"testing"

	"gatetogether/internal/data/entity"
	"gatetogether/internal/data/repository"
	"gatetogether/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAdminService(bookingRepo *mockBookingRepo) AdminService {
	repo := &repository.Repository{Booking: bookingRepo, Counter: newMockCounterRepo()}
	return NewAdminService(repo, zap.NewNop())
}

func TestListBookings(t *testing.T) {
	bookingRepo := newMockBookingRepo()
	bookingSvc := newTestBookingService(bookingRepo, newMockCounterRepo(), &mockDispatcher{})
	adminSvc := newTestAdminService(bookingRepo)

	for i := 0; i < 3; i++ {
		_, err := bookingSvc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			Email: fmt.Sprintf("user%d@x.com", i),
		})
		require.NoError(t, err)
	}

	result, err := adminSvc.ListBookings(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Bookings, 3)
	assert.Equal(t, 1, result.Page)

	for _, b := range result.Bookings {
		assert.Equal(t, entity.PaymentStatusPending, b.PaymentStatus)
		assert.NotEmpty(t, b.TicketNumber)
		assert.False(t, b.CheckedIn)
	}
}

func TestListBookings_Pagination(t *testing.T) {
	bookingRepo := newMockBookingRepo()
	bookingSvc := newTestBookingService(bookingRepo, newMockCounterRepo(), &mockDispatcher{})
	adminSvc := newTestAdminService(bookingRepo)

	for i := 0; i < 5; i++ {
		_, err := bookingSvc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			Email: fmt.Sprintf("user%d@x.com", i),
		})
		require.NoError(t, err)
	}

	result, err := adminSvc.ListBookings(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	assert.Len(t, result.Bookings, 2)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.PerPage)
}

func TestUpdatePaymentStatus(t *testing.T) {
	bookingRepo := newMockBookingRepo()
	bookingSvc := newTestBookingService(bookingRepo, newMockCounterRepo(), &mockDispatcher{})
	adminSvc := newTestAdminService(bookingRepo)

	created, err := bookingSvc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Email: "a@x.com",
	})
	require.NoError(t, err)

	updated, err := adminSvc.UpdatePaymentStatus(context.Background(), created.BookingID,
		&request.UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)

	// Back to pending works too: the flag is a manual toggle
	updated, err = adminSvc.UpdatePaymentStatus(context.Background(), created.BookingID,
		&request.UpdatePaymentStatusRequest{PaymentStatus: "pending"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, updated.PaymentStatus)
}

func TestUpdatePaymentStatus_UnknownBooking(t *testing.T) {
	adminSvc := newTestAdminService(newMockBookingRepo())

	_, err := adminSvc.UpdatePaymentStatus(context.Background(), uuid.NewString(),
		&request.UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdatePaymentStatus_InvalidInput(t *testing.T) {
	adminSvc := newTestAdminService(newMockBookingRepo())

	_, err := adminSvc.UpdatePaymentStatus(context.Background(), uuid.NewString(),
		&request.UpdatePaymentStatusRequest{PaymentStatus: "refunded"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = adminSvc.UpdatePaymentStatus(context.Background(), "not-a-uuid",
		&request.UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking ID")
}
