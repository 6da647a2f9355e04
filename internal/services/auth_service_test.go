package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MockHospitalRepo реализует repository.HospitalRepository
type MockHospitalRepo struct {
	hospital *models.Hospital
}

func (m *MockHospitalRepo) GetHospitals(ctx context.Context, limit, offset int) ([]models.Hospital, error) {
	return []models.Hospital{}, nil
}

func (m *MockHospitalRepo) GetHospitalById(ctx context.Context, hospitalId string) (*models.Hospital, error) {
	if m.hospital == nil {
		return nil, models.NewNotFound("hospital not found")
	}
	return m.hospital, nil
}

func (m *MockHospitalRepo) GetHospitalByEmail(ctx context.Context, email string) (*models.Hospital, error) {
	if m.hospital == nil {
		return nil, models.NewNotFound("hospital not found")
	}
	return m.hospital, nil
}

func (m *MockHospitalRepo) CreateHospital(ctx context.Context, hospReq models.HospitalRequest, hashedPassword string) (*models.Hospital, error) {
	return &models.Hospital{ID: "hosp-1", Name: hospReq.Name, Password: hashedPassword}, nil
}

func (m *MockHospitalRepo) UpdateHospital(ctx context.Context, hospitalId string, hospReq models.HospitalRequest) (*models.Hospital, error) {
	return m.hospital, nil
}

func (m *MockHospitalRepo) DeleteHospital(ctx context.Context, hospitalId string) error {
	return nil
}

// MockHospitalAdminRepo реализует repository.HospitalAdminRepository
type MockHospitalAdminRepo struct {
	admin *models.HospitalAdmin
}

func (m *MockHospitalAdminRepo) GetHospitalAdmins(ctx context.Context, limit, offset int) ([]models.HospitalAdmin, error) {
	return []models.HospitalAdmin{}, nil
}

func (m *MockHospitalAdminRepo) GetHospitalAdminsByHospital(ctx context.Context, hospitalId string) ([]models.HospitalAdmin, error) {
	return []models.HospitalAdmin{}, nil
}

func (m *MockHospitalAdminRepo) GetHospitalAdminById(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	if m.admin == nil {
		return nil, models.NewNotFound("hospital admin not found")
	}
	return m.admin, nil
}

func (m *MockHospitalAdminRepo) GetHospitalAdminByEmail(ctx context.Context, email string) (*models.HospitalAdmin, error) {
	if m.admin == nil {
		return nil, models.NewNotFound("hospital admin not found")
	}
	return m.admin, nil
}

func (m *MockHospitalAdminRepo) CreateHospitalAdmin(ctx context.Context, adminReq models.HospitalAdminRequest, hashedPassword string) (*models.HospitalAdmin, error) {
	return &models.HospitalAdmin{ID: "admin-1", Password: hashedPassword}, nil
}

func (m *MockHospitalAdminRepo) UpdateHospitalAdmin(ctx context.Context, adminId string, adminReq models.HospitalAdminRequest) (*models.HospitalAdmin, error) {
	return m.admin, nil
}

func (m *MockHospitalAdminRepo) ToggleHospitalAdminStatus(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	return m.admin, nil
}

func (m *MockHospitalAdminRepo) DeleteHospitalAdmin(ctx context.Context, adminId string) error {
	return nil
}

// MockSystemManagerRepo реализует repository.SystemManagerRepository
type MockSystemManagerRepo struct {
	manager *models.SystemManager
}

func (m *MockSystemManagerRepo) GetSystemManagers(ctx context.Context, limit, offset int) ([]models.SystemManager, error) {
	return []models.SystemManager{}, nil
}

func (m *MockSystemManagerRepo) GetSystemManagerById(ctx context.Context, managerId string) (*models.SystemManager, error) {
	if m.manager == nil {
		return nil, models.NewNotFound("system manager not found")
	}
	return m.manager, nil
}

func (m *MockSystemManagerRepo) GetSystemManagerByEmail(ctx context.Context, email string) (*models.SystemManager, error) {
	if m.manager == nil {
		return nil, models.NewNotFound("system manager not found")
	}
	return m.manager, nil
}

func (m *MockSystemManagerRepo) FindDuplicateField(ctx context.Context, email, phoneNumber, nic string) (string, error) {
	return "", nil
}

func (m *MockSystemManagerRepo) CreateSystemManager(ctx context.Context, mgrReq models.SystemManagerRequest, hashedPassword string) (*models.SystemManager, error) {
	return &models.SystemManager{ID: "mgr-1", Password: hashedPassword}, nil
}

func (m *MockSystemManagerRepo) UpdateSystemManager(ctx context.Context, managerId string, mgrReq models.SystemManagerRequest) (*models.SystemManager, error) {
	return m.manager, nil
}

func (m *MockSystemManagerRepo) DeleteSystemManager(ctx context.Context, managerId string) error {
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func newAuthService(donorRepo *MockDonorRepo) *services.AuthService {
	return services.NewAuthService(
		donorRepo,
		&MockHospitalRepo{},
		&MockHospitalAdminRepo{},
		&MockSystemManagerRepo{},
		"test-secret",
		zap.NewNop(),
	)
}

func TestSigninDonorSuccess(t *testing.T) {
	donor := &models.Donor{
		ID:       "donor-1",
		Email:    "kamal@example.com",
		Password: hashPassword(t, "sup3rsecret"),
	}
	svc := newAuthService(&MockDonorRepo{donor: donor})

	resp, err := svc.SigninDonor(context.Background(), models.SigninRequest{
		Email:    "kamal@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	require.Equal(t, services.RoleDonor, resp.Role)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "donor-1", claims["sub"])
	require.Equal(t, services.RoleDonor, claims["role"])
}

func TestSigninDonorWrongPassword(t *testing.T) {
	donor := &models.Donor{
		ID:       "donor-1",
		Email:    "kamal@example.com",
		Password: hashPassword(t, "sup3rsecret"),
	}
	svc := newAuthService(&MockDonorRepo{donor: donor})

	_, err := svc.SigninDonor(context.Background(), models.SigninRequest{
		Email:    "kamal@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
}

func TestSigninDonorUnknownEmail(t *testing.T) {
	svc := newAuthService(&MockDonorRepo{})

	_, err := svc.SigninDonor(context.Background(), models.SigninRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
	require.Equal(t, "incorrect email or password", errResp.Message)
}

func TestSigninDonorMissingFields(t *testing.T) {
	svc := newAuthService(&MockDonorRepo{})

	_, err := svc.SigninDonor(context.Background(), models.SigninRequest{Email: "kamal@example.com"})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, errResp.StatusCode)
}
