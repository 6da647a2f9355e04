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

// MockDonorRepo реализует repository.DonorRepository
type MockDonorRepo struct {
	donor *models.Donor
}

func (m *MockDonorRepo) GetDonors(ctx context.Context, limit, offset int) ([]models.Donor, error) {
	return []models.Donor{}, nil
}

func (m *MockDonorRepo) GetDonorById(ctx context.Context, donorId string) (*models.Donor, error) {
	if m.donor == nil {
		return nil, models.NewNotFound("donor not found")
	}
	return m.donor, nil
}

func (m *MockDonorRepo) GetDonorByEmail(ctx context.Context, email string) (*models.Donor, error) {
	if m.donor == nil {
		return nil, models.NewNotFound("donor not found")
	}
	return m.donor, nil
}

func (m *MockDonorRepo) CreateDonor(ctx context.Context, donorReq models.DonorRequest, hashedPassword string) (*models.Donor, error) {
	return &models.Donor{
		ID:        "donor-1",
		FirstName: donorReq.FirstName,
		Email:     donorReq.Email,
		Password:  hashedPassword,
	}, nil
}

func (m *MockDonorRepo) UpdateDonor(ctx context.Context, donorId string, donorReq models.DonorRequest) (*models.Donor, error) {
	return m.donor, nil
}

func (m *MockDonorRepo) ToggleDonorStatus(ctx context.Context, donorId string) (*models.Donor, error) {
	return m.donor, nil
}

func (m *MockDonorRepo) DeleteDonor(ctx context.Context, donorId string) error {
	return nil
}

func validDonorRequest() models.DonorRequest {
	return models.DonorRequest{
		FirstName:   "Kamal",
		LastName:    "Silva",
		Gender:      models.Male,
		PhoneNumber: "0712345678",
		Email:       "kamal@example.com",
		Password:    "sup3rsecret",
		DOB:         time.Now().AddDate(-25, 0, 0),
		BloodType:   models.BPositive,
		Location:    "Kandy",
	}
}

func TestSignupDonorValidation(t *testing.T) {
	svc := services.NewDonorService(&MockDonorRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(req *models.DonorRequest)
	}{
		{"missing first name", func(r *models.DonorRequest) { r.FirstName = "" }},
		{"missing password", func(r *models.DonorRequest) { r.Password = "" }},
		{"invalid email", func(r *models.DonorRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.DonorRequest) { r.Password = "short" }},
		{"invalid phone", func(r *models.DonorRequest) { r.PhoneNumber = "123" }},
		{"invalid gender", func(r *models.DonorRequest) { r.Gender = "Unknown" }},
		{"invalid blood type", func(r *models.DonorRequest) { r.BloodType = "Z+" }},
		{"underage donor", func(r *models.DonorRequest) { r.DOB = time.Now().AddDate(-16, 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDonorRequest()
			tt.mutate(&req)

			_, err := svc.SignupDonor(context.Background(), req)
			require.Error(t, err)

			errResp, ok := err.(*models.ErrorResponse)
			require.True(t, ok)
			require.Equal(t, http.StatusBadRequest, errResp.StatusCode)
			require.Equal(t, models.ValidationError, errResp.Kind)
		})
	}
}

func TestFetchDonorByIdNotFound(t *testing.T) {
	svc := services.NewDonorService(&MockDonorRepo{}, nil)

	_, err := svc.FetchDonorById(context.Background(), "missing")
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, errResp.StatusCode)
}
