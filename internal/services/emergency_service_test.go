package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/stretchr/testify/require"
)

// MockEmergencyRepo реализует repository.EmergencyRepository
type MockEmergencyRepo struct {
	request            *models.EmergencyRequest
	GetRequestsFunc    func(ctx context.Context, limit, offset int, bloodTypes []string) ([]models.EmergencyRequest, error)
	AcceptRequestFunc  func(ctx context.Context, requestId, actorId string, actorKind models.ActorKind) (*models.EmergencyRequest, error)
	DeclineRequestFunc func(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error)
	CancelExpiredFunc  func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockEmergencyRepo) GetRequests(ctx context.Context, limit, offset int, bloodTypes []string) ([]models.EmergencyRequest, error) {
	if m.GetRequestsFunc != nil {
		return m.GetRequestsFunc(ctx, limit, offset, bloodTypes)
	}
	return []models.EmergencyRequest{}, nil
}

func (m *MockEmergencyRepo) GetRequestById(ctx context.Context, requestId string) (*models.EmergencyRequest, error) {
	if m.request == nil {
		return nil, models.NewNotFound("emergency request not found")
	}
	return m.request, nil
}

func (m *MockEmergencyRepo) CreateRequest(ctx context.Context, input models.EmergencyRequestInput) (*models.EmergencyRequest, error) {
	return &models.EmergencyRequest{
		ID:            "6c1f8f2e-0000-0000-0000-000000000001",
		Name:          input.Name,
		PhoneNumber:   input.PhoneNumber,
		ProofOfIDNum:  input.ProofOfIDNum,
		PatientBlood:  input.PatientBlood,
		Units:         input.Units,
		Reason:        input.Reason,
		CriticalLevel: input.CriticalLevel,
		WithinDate:    input.WithinDate,
		HospitalName:  input.HospitalName,
		Address:       input.Address,
		ActiveStatus:  models.InactiveRequest,
		AcceptStatus:  models.PendingRequest,
	}, nil
}

func (m *MockEmergencyRepo) AcceptRequest(ctx context.Context, requestId, actorId string, actorKind models.ActorKind) (*models.EmergencyRequest, error) {
	if m.AcceptRequestFunc != nil {
		return m.AcceptRequestFunc(ctx, requestId, actorId, actorKind)
	}
	return m.request, nil
}

func (m *MockEmergencyRepo) DeclineRequest(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error) {
	if m.DeclineRequestFunc != nil {
		return m.DeclineRequestFunc(ctx, requestId, reason)
	}
	return m.request, nil
}

func (m *MockEmergencyRepo) DeleteRequest(ctx context.Context, requestId string) error {
	return nil
}

func (m *MockEmergencyRepo) CancelExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.CancelExpiredFunc != nil {
		return m.CancelExpiredFunc(ctx, now)
	}
	return 0, nil
}

func validEmergencyInput() models.EmergencyRequestInput {
	return models.EmergencyRequestInput{
		Name:          "Nimal Perera",
		PhoneNumber:   "0771234567",
		ProofOfIDNum:  "991234567V",
		PatientBlood:  models.ONegative,
		Units:         2,
		Reason:        "surgery",
		CriticalLevel: models.HighLevel,
		WithinDate:    time.Now().Add(48 * time.Hour),
		HospitalName:  "General Hospital",
		Address:       "Colombo 10",
	}
}

func pendingRequest() *models.EmergencyRequest {
	return &models.EmergencyRequest{
		ID:           "6c1f8f2e-0000-0000-0000-000000000001",
		Name:         "Nimal Perera",
		PatientBlood: models.ONegative,
		Units:        2,
		HospitalName: "General Hospital",
		ActiveStatus: models.InactiveRequest,
		AcceptStatus: models.PendingRequest,
	}
}

func TestCreateRequestValidation(t *testing.T) {
	svc := services.NewEmergencyService(&MockEmergencyRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(input *models.EmergencyRequestInput)
	}{
		{"missing name", func(in *models.EmergencyRequestInput) { in.Name = "" }},
		{"missing hospital", func(in *models.EmergencyRequestInput) { in.HospitalName = "" }},
		{"short phone number", func(in *models.EmergencyRequestInput) { in.PhoneNumber = "12345" }},
		{"phone with letters", func(in *models.EmergencyRequestInput) { in.PhoneNumber = "07712345ab" }},
		{"invalid blood type", func(in *models.EmergencyRequestInput) { in.PatientBlood = "C+" }},
		{"zero units", func(in *models.EmergencyRequestInput) { in.Units = 0 }},
		{"negative units", func(in *models.EmergencyRequestInput) { in.Units = -1 }},
		{"invalid critical level", func(in *models.EmergencyRequestInput) { in.CriticalLevel = "Urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validEmergencyInput()
			tt.mutate(&input)

			_, err := svc.CreateRequest(context.Background(), input)
			require.Error(t, err)

			errResp, ok := err.(*models.ErrorResponse)
			require.True(t, ok)
			require.Equal(t, http.StatusBadRequest, errResp.StatusCode)
			require.Equal(t, models.ValidationError, errResp.Kind)
		})
	}
}

func TestCreateRequestSuccess(t *testing.T) {
	svc := services.NewEmergencyService(&MockEmergencyRepo{}, nil)

	created, err := svc.CreateRequest(context.Background(), validEmergencyInput())
	require.NoError(t, err)
	require.Equal(t, models.PendingRequest, created.AcceptStatus)
	require.Equal(t, models.InactiveRequest, created.ActiveStatus)
}

func TestAcceptRequestRejectsUnknownActor(t *testing.T) {
	svc := services.NewEmergencyService(&MockEmergencyRepo{request: pendingRequest()}, nil)

	_, err := svc.AcceptRequest(context.Background(), "req-1", models.AcceptRequestInput{
		AcceptedBy:     "someone",
		AcceptedByType: "Admin",
	})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, models.ValidationError, errResp.Kind)
}

func TestAcceptRequestOnlyFromPending(t *testing.T) {
	for _, status := range []models.AcceptStatus{models.AcceptedRequest, models.DeclinedRequest} {
		t.Run(string(status), func(t *testing.T) {
			request := pendingRequest()
			request.AcceptStatus = status
			svc := services.NewEmergencyService(&MockEmergencyRepo{request: request}, nil)

			_, err := svc.AcceptRequest(context.Background(), request.ID, models.AcceptRequestInput{
				AcceptedBy:     "General Hospital",
				AcceptedByType: models.HospitalActor,
			})
			require.Error(t, err)

			errResp, ok := err.(*models.ErrorResponse)
			require.True(t, ok)
			require.Equal(t, http.StatusConflict, errResp.StatusCode)
			require.Equal(t, models.InvalidStateTransition, errResp.Kind)
		})
	}
}

func TestAcceptRequestNotFound(t *testing.T) {
	svc := services.NewEmergencyService(&MockEmergencyRepo{}, nil)

	_, err := svc.AcceptRequest(context.Background(), "missing", models.AcceptRequestInput{
		AcceptedBy:     "General Hospital",
		AcceptedByType: models.HospitalActor,
	})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, errResp.StatusCode)
}

func TestDeclineRequestOnlyFromPending(t *testing.T) {
	for _, status := range []models.AcceptStatus{models.AcceptedRequest, models.DeclinedRequest} {
		t.Run(string(status), func(t *testing.T) {
			request := pendingRequest()
			request.AcceptStatus = status
			svc := services.NewEmergencyService(&MockEmergencyRepo{request: request}, nil)

			_, err := svc.DeclineRequest(context.Background(), request.ID, "out of stock")
			require.Error(t, err)

			errResp, ok := err.(*models.ErrorResponse)
			require.True(t, ok)
			require.Equal(t, http.StatusConflict, errResp.StatusCode)
			require.Equal(t, models.InvalidStateTransition, errResp.Kind)
		})
	}
}

func TestDeclineRequestDefaultReason(t *testing.T) {
	var gotReason string
	repo := &MockEmergencyRepo{
		request: pendingRequest(),
		DeclineRequestFunc: func(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error) {
			gotReason = reason
			return pendingRequest(), nil
		},
	}
	svc := services.NewEmergencyService(repo, nil)

	_, err := svc.DeclineRequest(context.Background(), "req-1", "")
	require.NoError(t, err)
	require.Equal(t, models.DefaultDeclineReason, gotReason)
}

func TestDeclineRequestKeepsProvidedReason(t *testing.T) {
	var gotReason string
	repo := &MockEmergencyRepo{
		request: pendingRequest(),
		DeclineRequestFunc: func(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error) {
			gotReason = reason
			return pendingRequest(), nil
		},
	}
	svc := services.NewEmergencyService(repo, nil)

	_, err := svc.DeclineRequest(context.Background(), "req-1", "no matching stock nearby")
	require.NoError(t, err)
	require.Equal(t, "no matching stock nearby", gotReason)
}

func TestFetchRequestsFiltersInvalidBloodTypes(t *testing.T) {
	var gotTypes []string
	repo := &MockEmergencyRepo{
		GetRequestsFunc: func(ctx context.Context, limit, offset int, bloodTypes []string) ([]models.EmergencyRequest, error) {
			gotTypes = bloodTypes
			return []models.EmergencyRequest{}, nil
		},
	}
	svc := services.NewEmergencyService(repo, nil)

	_, err := svc.FetchRequests(context.Background(), "", "", []string{"O-", "C+", "AB+", "bogus"})
	require.NoError(t, err)
	require.Equal(t, []string{"O-", "AB+"}, gotTypes)
}

func TestFetchRequestsInvalidPagination(t *testing.T) {
	svc := services.NewEmergencyService(&MockEmergencyRepo{}, nil)

	_, err := svc.FetchRequests(context.Background(), "-1", "", nil)
	require.Error(t, err)

	_, err = svc.FetchRequests(context.Background(), "100", "", nil)
	require.Error(t, err)
}
