package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"gatetogether/internal/data/entity"
	"gatetogether/internal/data/repository"
	"gatetogether/pkg/mailer"

	"github.com/google/uuid"
)

// Mock implementations for testing

type mockBookingRepo struct {
	mu            sync.Mutex
	bookings      map[uuid.UUID]*entity.Booking
	shouldFailOps map[string]bool
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		bookings:      make(map[uuid.UUID]*entity.Booking),
		shouldFailOps: make(map[string]bool),
	}
}

func copyBooking(b *entity.Booking) *entity.Booking {
	cp := *b
	return &cp
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["Create"] {
		return errors.New("mock error")
	}

	for _, existing := range m.bookings {
		if existing.Email == booking.Email {
			return fmt.Errorf("create booking for %s: %w", booking.Email, repository.ErrDuplicateEmail)
		}
	}

	m.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["FindByID"] {
		return nil, errors.New("mock error")
	}

	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(booking), nil
}

func (m *mockBookingRepo) FindByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["FindByEmail"] {
		return nil, errors.New("mock error")
	}

	for _, booking := range m.bookings {
		if booking.Email == email {
			return copyBooking(booking), nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["FindAll"] {
		return nil, errors.New("mock error")
	}

	var all []*entity.Booking
	for _, booking := range m.bookings {
		all = append(all, copyBooking(booking))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockBookingRepo) CountAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["CountAll"] {
		return 0, errors.New("mock error")
	}

	return int64(len(m.bookings)), nil
}

func (m *mockBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["UpdatePaymentStatus"] {
		return nil, errors.New("mock error")
	}

	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	booking.PaymentStatus = status
	booking.UpdatedAt = time.Now()
	return copyBooking(booking), nil
}

func (m *mockBookingRepo) AttachToken(ctx context.Context, id uuid.UUID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["AttachToken"] {
		return errors.New("mock error")
	}

	booking, ok := m.bookings[id]
	if !ok || booking.QRToken != nil {
		return errors.New("booking not found or token already set")
	}
	booking.QRToken = &token
	return nil
}

func (m *mockBookingRepo) MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFailOps["MarkCheckedIn"] {
		return nil, errors.New("mock error")
	}

	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	// Conditional transition, same as the SQL UPDATE ... WHERE checked_in = FALSE
	if !booking.CheckedIn {
		booking.CheckedIn = true
		booking.CheckedInAt = &at
	}
	return copyBooking(booking), nil
}

type mockCounterRepo struct {
	mu         sync.Mutex
	seqs       map[string]int64
	shouldFail bool
}

func newMockCounterRepo() *mockCounterRepo {
	return &mockCounterRepo{seqs: make(map[string]int64)}
}

func (m *mockCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail {
		return 0, errors.New("mock error")
	}

	m.seqs[name]++
	return m.seqs[name], nil
}

type mockDispatcher struct {
	mu         sync.Mutex
	sent       []*mailer.Payload
	shouldFail bool
}

func (m *mockDispatcher) Send(ctx context.Context, payload *mailer.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail {
		return errors.New("smtp unavailable")
	}

	m.sent = append(m.sent, payload)
	return nil
}

func (m *mockDispatcher) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
