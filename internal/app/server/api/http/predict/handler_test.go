package predict

import (
	"context"
	"errors"
	"testing"

	"diascreen/internal/app/server/api/http/middleware/auth"
	"diascreen/internal/domain/prediction"
	"diascreen/internal/domain/session"
	"diascreen/internal/inference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Predict(ctx context.Context, id session.Identity, f inference.Features) (inference.Outcome, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(inference.Outcome), args.Error(1)
}

func authCtx() context.Context {
	return auth.WithIdentity(context.Background(), session.Identity{
		AccountID:   "USR123456789012",
		PatientName: "Jane Doe",
	})
}

func TestHandler_Home(t *testing.T) {
	h := NewHandler(nil, slog.Default(), nil)

	resp, err := h.home(authCtx(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resp.Body.PatientName)
	assert.Equal(t, "Ok", resp.Body.Status)
}

func TestHandler_Home_Anonymous(t *testing.T) {
	h := NewHandler(nil, slog.Default(), nil)

	// Без identity в контексте (мидлварь не пускала) — Unauthorized
	resp, err := h.home(context.Background(), nil)
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestHandler_Predict(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	input := &predictInput{}
	input.Body = PredictRequest{
		Pregnancies:              2,
		Glucose:                  130,
		BloodPressure:            70,
		SkinThickness:            20,
		Insulin:                  85,
		BMI:                      30.1,
		DiabetesPedigreeFunction: 0.5,
		Age:                      45,
	}

	svc.On("Predict",
		mock.Anything,
		session.Identity{AccountID: "USR123456789012", PatientName: "Jane Doe"},
		mock.MatchedBy(func(f inference.Features) bool {
			return f.Glucose == 130 && f.BMI == 30.1 && f.Age == 45
		}),
	).Return(inference.OutcomeDiabetic, nil)

	resp, err := h.predict(authCtx(), input)
	require.NoError(t, err)

	assert.Equal(t, "Diabetic", resp.Body.Result)
	assert.Equal(t, "Jane Doe", resp.Body.PatientName)
	assert.Equal(t, "Ok", resp.Body.Status)

	svc.AssertExpectations(t)
}

func TestHandler_Predict_Anonymous(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	resp, err := h.predict(context.Background(), &predictInput{})
	assert.Nil(t, resp)
	assert.Error(t, err)

	svc.AssertNotCalled(t, "Predict")
}

func TestHandler_Predict_StorageError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Predict", mock.Anything, mock.Anything, mock.Anything).
		Return(inference.Outcome(""), errors.New("save prediction: disk full"))

	resp, err := h.predict(authCtx(), &predictInput{})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "disk full")
}

func TestHandler_Predict_UnknownAccount(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Predict", mock.Anything, mock.Anything, mock.Anything).
		Return(inference.Outcome(""), prediction.ErrUnknownAccount)

	resp, err := h.predict(authCtx(), &predictInput{})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account no longer registered")
}
