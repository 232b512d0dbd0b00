package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, acc Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockRepository) All(ctx context.Context) ([]Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Account), args.Error(1)
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Name:    "Jane Doe",
		Age:     45,
		Address: "12 Main St",
		Mobile:  "5550001122",
		Problem: "frequent thirst",
	}
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, false, slog.Default())

	var saved Account
	mockRepo.On("Append", mock.Anything, mock.MatchedBy(func(acc Account) bool {
		saved = acc
		return acc.Name == "Jane Doe" && acc.UserID != "" && acc.Password != ""
	})).Return(nil)

	creds, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^USR\d{12}$`, creds.UserID)
	assert.Len(t, creds.Password, 8)
	assert.Equal(t, creds.UserID, saved.UserID)

	// В хранилище попадает хэш, а не открытый пароль
	assert.NotEqual(t, creds.Password, saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte(creds.Password)))

	mockRepo.AssertExpectations(t)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, false, slog.Default())

	mockRepo.On("Append", mock.Anything, mock.AnythingOfType("Account")).Return(errors.New("disk full"))

	_, err := service.Register(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	mockRepo.AssertExpectations(t)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{name: "missing name", mutate: func(r *RegisterRequest) { r.Name = "" }},
		{name: "missing age", mutate: func(r *RegisterRequest) { r.Age = 0 }},
		{name: "missing address", mutate: func(r *RegisterRequest) { r.Address = "" }},
		{name: "missing mobile", mutate: func(r *RegisterRequest) { r.Mobile = "" }},
		{name: "missing problem", mutate: func(r *RegisterRequest) { r.Problem = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, false, slog.Default())

			req := validRequest()
			tt.mutate(&req)

			_, err := service.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Append")
		})
	}
}

func TestService_Register_StrictChecksExisting(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, true, slog.Default())

	mockRepo.On("All", mock.Anything).Return([]Account{
		{UserID: "USR000000000001", Name: "Existing"},
	}, nil)
	mockRepo.On("Append", mock.Anything, mock.AnythingOfType("Account")).Return(nil)

	creds, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "USR000000000001", creds.UserID)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, false, slog.Default())

	password := "Ab3kZ9qX"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	acc := Account{
		Name:     "Jane Doe",
		UserID:   "USR123456789012",
		Password: string(hash),
	}
	mockRepo.On("All", mock.Anything).Return([]Account{acc}, nil)

	got, err := service.Authenticate(context.Background(), acc.UserID, password)
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_NoAccounts(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, false, slog.Default())

	mockRepo.On("All", mock.Anything).Return([]Account{}, nil)

	_, err := service.Authenticate(context.Background(), "USR123456789012", "whatever")
	assert.ErrorIs(t, err, ErrNoAccounts)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Invalid(t *testing.T) {
	password := "Ab3kZ9qX"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	acc := Account{
		Name:     "Jane Doe",
		UserID:   "USR123456789012",
		Password: string(hash),
	}

	tests := []struct {
		name     string
		userID   string
		password string
	}{
		{name: "wrong user id", userID: "USR999999999999", password: password},
		{name: "wrong password", userID: acc.UserID, password: "Wrong123"},
		{name: "both wrong", userID: "USR999999999999", password: "Wrong123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, false, slog.Default())
			mockRepo.On("All", mock.Anything).Return([]Account{acc}, nil)

			_, err := service.Authenticate(context.Background(), tt.userID, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Authenticate_StorageError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, false, slog.Default())

	mockRepo.On("All", mock.Anything).Return(nil, errors.New("corrupt table"))

	_, err := service.Authenticate(context.Background(), "USR123456789012", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt table")

	mockRepo.AssertExpectations(t)
}
