package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateContactMessage(ctx context.Context, msg models.ContactMessage) (int64, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo *RepoMock) *Service {
	return New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validForm() models.ContactForm {
	return models.ContactForm{
		Name:    "Anna",
		Email:   "anna@example.com",
		Subject: "Consulta",
		Message: "Vull saber més sobre ProPulse.",
	}
}

func TestSend_Success(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateContactMessage", mock.Anything, mock.MatchedBy(func(m models.ContactMessage) bool {
		return m.Email == "anna@example.com" && m.Subject == "Consulta"
	})).Return(int64(3), nil)
	svc := newTestService(repo)

	err := svc.Send(context.Background(), validForm())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSend_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ContactForm)
		wantField string
	}{
		{"пустое имя", func(f *models.ContactForm) { f.Name = "" }, "Name"},
		{"кривой e-mail", func(f *models.ContactForm) { f.Email = "nope" }, "Email"},
		{"пустая тема", func(f *models.ContactForm) { f.Subject = "" }, "Subject"},
		{"слишком короткое сообщение", func(f *models.ContactForm) { f.Message = "Hola" }, "Message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := newTestService(repo)

			form := validForm()
			tt.mutate(&form)

			err := svc.Send(context.Background(), form)

			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			repo.AssertNotCalled(t, "CreateContactMessage", mock.Anything, mock.Anything)
		})
	}
}

func TestSend_RepoError(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateContactMessage", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("db error"))
	svc := newTestService(repo)

	err := svc.Send(context.Background(), validForm())
	require.Error(t, err)
	assert.False(t, errs.IsValidation(err))
}
