package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/booking"
	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store/memory"
)

var ctx = context.Background()

type fixture struct {
	engine   *booking.Engine
	store    *memory.Store
	provider string
	service  string
	at       time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	st := memory.New()
	f := &fixture{
		engine:   booking.New(st),
		store:    st,
		provider: uuid.New().String(),
		service:  uuid.New().String(),
	}
	f.at, _ = time.Parse(time.RFC3339, "2025-12-02T14:00:00Z")

	require.NoError(t, st.CreateService(ctx, &model.Service{
		ID: f.service, Name: "Corte Feminino", Duration: 45, Price: 80, Category: "cabelo",
	}))
	require.NoError(t, st.RegisterSlot(ctx, &model.Slot{
		ID: uuid.New().String(), ProviderID: f.provider, At: f.at,
	}))
	return f
}

func TestCreate(t *testing.T) {
	f := setup(t)
	client := uuid.New().String()

	a, err := f.engine.Create(ctx, client, booking.Request{
		ProviderID: f.provider, ServiceID: f.service, At: f.at,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, client, a.ClientID)
	assert.Equal(t, model.StatusBooked, a.Status)
	assert.True(t, a.At.Equal(f.at))

	// slot consumed
	_, err = f.store.FindSlot(ctx, f.provider, f.at)
	assert.Error(t, err)
}

func TestCreateValidation(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name string
		req  booking.Request
		want error
	}{
		{"missing provider", booking.Request{ServiceID: f.service, At: f.at}, booking.ErrMissingFields},
		{"missing service", booking.Request{ProviderID: f.provider, At: f.at}, booking.ErrMissingFields},
		{"missing time", booking.Request{ProviderID: f.provider, ServiceID: f.service}, booking.ErrMissingFields},
		{"no slot at time", booking.Request{ProviderID: f.provider, ServiceID: f.service, At: f.at.Add(time.Hour)}, booking.ErrSlotUnavailable},
		{"unknown service", booking.Request{ProviderID: f.provider, ServiceID: uuid.New().String(), At: f.at}, booking.ErrInvalidService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.Create(ctx, uuid.New().String(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// the slot check runs before the service check, so a bad slot and a bad
// service together surface as slot unavailable
func TestCreatePreconditionOrder(t *testing.T) {
	f := setup(t)
	_, err := f.engine.Create(ctx, uuid.New().String(), booking.Request{
		ProviderID: f.provider, ServiceID: uuid.New().String(), At: f.at.Add(time.Hour),
	})
	assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
}

func TestCreateSameInstantDifferentOffset(t *testing.T) {
	f := setup(t)
	offset, _ := time.Parse(time.RFC3339, "2025-12-02T11:00:00-03:00")

	a, err := f.engine.Create(ctx, uuid.New().String(), booking.Request{
		ProviderID: f.provider, ServiceID: f.service, At: offset,
	})
	require.NoError(t, err)
	assert.True(t, a.At.Equal(f.at))
	assert.Equal(t, time.UTC, a.At.Location())
}

func TestCreateTwiceSecondLoses(t *testing.T) {
	f := setup(t)

	_, err := f.engine.Create(ctx, uuid.New().String(), booking.Request{
		ProviderID: f.provider, ServiceID: f.service, At: f.at,
	})
	require.NoError(t, err)

	_, err = f.engine.Create(ctx, uuid.New().String(), booking.Request{
		ProviderID: f.provider, ServiceID: f.service, At: f.at,
	})
	assert.ErrorIs(t, err, booking.ErrSlotUnavailable)

	list, err := f.store.ListAppointmentsByProvider(ctx, f.provider)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateConcurrent(t *testing.T) {
	f := setup(t)

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.engine.Create(ctx, uuid.New().String(), booking.Request{
				ProviderID: f.provider, ServiceID: f.service, At: f.at,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, wins)

	list, err := f.store.ListAppointmentsByProvider(ctx, f.provider)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListByRole(t *testing.T) {
	f := setup(t)
	client := uuid.New().String()

	_, err := f.engine.Create(ctx, client, booking.Request{
		ProviderID: f.provider, ServiceID: f.service, At: f.at,
	})
	require.NoError(t, err)

	byClient, err := f.engine.List(ctx, client, model.RoleClient)
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	byProvider, err := f.engine.List(ctx, f.provider, model.RoleProvider)
	require.NoError(t, err)
	assert.Len(t, byProvider, 1)

	other, err := f.engine.List(ctx, uuid.New().String(), model.RoleClient)
	require.NoError(t, err)
	assert.Empty(t, other)

	unknown, err := f.engine.List(ctx, client, "gerente")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}
