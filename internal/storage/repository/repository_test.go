package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/propulse/internal/migrations"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "propulse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.DB.Close() })

	require.NoError(t, migrations.Run(st.DB))
	return st
}

func mustRegister(t *testing.T, st *Storage, name, email string) int64 {
	t.Helper()
	id, err := st.RegisterUser(context.Background(), models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehash",
	})
	require.NoError(t, err)
	return id
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	mustRegister(t, st, "Anna", "anna@example.com")

	_, err := st.RegisterUser(ctx, models.User{
		Name:         "Another",
		Email:        "anna@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
}

func TestGetUserByEmail(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	id := mustRegister(t, st, "Anna", "anna@example.com")

	u, err := st.GetUserByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Anna", u.Name)
	assert.NotEmpty(t, u.PasswordHash)

	// неизвестная почта — (nil, nil), не ошибка
	u, err = st.GetUserByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestActivities_Ordering(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	userID := mustRegister(t, st, "Anna", "anna@example.com")

	day := func(s string) time.Time {
		d, err := time.Parse(models.ActivityDateLayout, s)
		require.NoError(t, err)
		return d
	}

	// вставляем не по порядку дат, вторая запись за 10-е число — позже
	first, err := st.CreateActivity(ctx, models.Activity{UserID: userID, Date: day("2025-03-10"), BPM: 140, Speed: 10, Minutes: 30})
	require.NoError(t, err)
	_, err = st.CreateActivity(ctx, models.Activity{UserID: userID, Date: day("2025-03-12"), BPM: 150, Speed: 11, Minutes: 25})
	require.NoError(t, err)
	second, err := st.CreateActivity(ctx, models.Activity{UserID: userID, Date: day("2025-03-10"), BPM: 160, Speed: 12, Minutes: 20})
	require.NoError(t, err)

	list, err := st.ListActivities(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, day("2025-03-12"), list[0].Date, "новые даты первыми")
	assert.Equal(t, second, list[1].ID, "при равных датах позже вставленная запись первее")
	assert.Equal(t, first, list[2].ID)
}

func TestActivities_IsolatedPerUser(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	anna := mustRegister(t, st, "Anna", "anna@example.com")
	bob := mustRegister(t, st, "Bob", "bob@example.com")

	d, _ := time.Parse(models.ActivityDateLayout, "2025-03-10")
	_, err := st.CreateActivity(ctx, models.Activity{UserID: anna, Date: d, BPM: 140, Speed: 10, Minutes: 30})
	require.NoError(t, err)

	list, err := st.ListActivities(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteUser_CascadesActivities(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	userID := mustRegister(t, st, "Anna", "anna@example.com")
	d, _ := time.Parse(models.ActivityDateLayout, "2025-03-10")
	_, err := st.CreateActivity(ctx, models.Activity{UserID: userID, Date: d, BPM: 140, Speed: 10, Minutes: 30})
	require.NoError(t, err)

	require.NoError(t, st.DeleteUser(ctx, userID))

	list, err := st.ListActivities(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrders_RoundtripAndDuplicateCode(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	order := &models.Order{
		Code:       "PP-AB12CD-090542",
		BuyerName:  "Anna",
		BuyerEmail: "anna@example.com",
		Total:      69.30,
		Items: []models.OrderItem{
			{ID: 1, Name: "ProPulse Band", Qty: 2, Unit: 29.90, Line: 59.80},
			{ID: 4, Name: "Pack Running", Qty: 1, Unit: 9.50, Line: 9.50},
		},
	}
	_, err := st.CreateOrder(ctx, order)
	require.NoError(t, err)

	got, err := st.GetOrderByCode(ctx, "PP-AB12CD-090542")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.BuyerName, got.BuyerName)
	assert.InDelta(t, 69.30, got.Total, 0.001)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[0].Qty)
	assert.InDelta(t, 29.90, got.Items[0].Unit, 0.001)

	_, err = st.CreateOrder(ctx, &models.Order{
		Code:       "PP-AB12CD-090542",
		BuyerName:  "Other",
		BuyerEmail: "other@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrDuplicateOrderCode)

	got, err = st.GetOrderByCode(ctx, "PP-FFFFFF-000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateContactMessage(t *testing.T) {
	st := newTestStorage(t)

	id, err := st.CreateContactMessage(context.Background(), models.ContactMessage{
		Name:    "Anna",
		Email:   "anna@example.com",
		Subject: "Consulta",
		Message: "Vull saber més sobre ProPulse.",
	})
	require.NoError(t, err)
	assert.Positive(t, id)
}

func TestCancelledContext(t *testing.T) {
	st := newTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.GetUserByEmail(ctx, "anna@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
