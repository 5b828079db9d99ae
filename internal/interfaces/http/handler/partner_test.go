package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	app "github.com/docs2ai/gateway/internal/application/partner"
	"github.com/docs2ai/gateway/internal/domain/partner"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPartnerRepository is a mock implementation of PartnerRepository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id int64) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByRole(ctx context.Context, role partner.Role, filter shared.Filter) (shared.ListPage[partner.Partner], error) {
	args := m.Called(ctx, role, filter)
	return args.Get(0).(shared.ListPage[partner.Partner]), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPartnerRouter(repo *MockPartnerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewPartnerHandler(app.NewPartnerService(repo)).RegisterRoutes(api)
	return router
}

func TestListVendorsEndpoint(t *testing.T) {
	repo := new(MockPartnerRepository)
	router := newPartnerRouter(repo)

	vendor, err := partner.NewVendor("Acme Supplies")
	require.NoError(t, err)
	vendor.ID = 7
	repo.On("FindByRole", mock.Anything, partner.RoleVendor, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Limit == 5 && f.Offset == 0
	})).
		Return(shared.ListPage[partner.Partner]{Items: []partner.Partner{*vendor}, Total: 12}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/vendors?limit=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	assert.Contains(t, w.Body.String(), `"total":12`)
	assert.Contains(t, w.Body.String(), `"Acme Supplies"`)
}

func TestCreateVendorEndpoint(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		router := newPartnerRouter(repo)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(p *partner.Partner) bool {
			return p.Name == "Acme Supplies" && p.SupplierRank == 1
		})).Return(nil)

		body := strings.NewReader(`{"name":"Acme Supplies","email":"billing@acme.example"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/vendors", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Vendor created successfully")
		repo.AssertExpectations(t)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		router := newPartnerRouter(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/vendors", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid JSON payload")
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("domain validation maps to 400", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		router := newPartnerRouter(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/vendors", strings.NewReader(`{"email":"x@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
	})
}

func TestGetVendorEndpoint(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		router := newPartnerRouter(repo)
		repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/vendors/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Vendor with ID 99 not found")
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		router := newPartnerRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/vendors/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid id")
	})
}
