package unit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Unit(ctx context.Context, id string) (*models.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unit), args.Error(1)
}

func serve(svc Service, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/getUnit/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("unitId", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).ServeHTTP(rr, req)
	return rr
}

func TestUnitHandler_WithSubUnits(t *testing.T) {
	svc := new(mockService)
	svc.On("Unit", mock.Anything, "u1").Return(&models.Unit{
		ID:   "u1",
		Name: "Equations",
		SubUnits: []*models.SubUnit{
			{ID: "su2", Name: "Quadratic", Content: "x^2"},
			{ID: "su1", Name: "Linear", Content: "x"},
		},
	}, nil).Once()

	rr := serve(svc, "u1")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"_id":"u1","name":"Equations","isFree":false,"subUnits":[
		{"_id":"su2","name":"Quadratic","content":"x^2"},
		{"_id":"su1","name":"Linear","content":"x"}]}`, rr.Body.String())
}

func TestUnitHandler_Missing(t *testing.T) {
	svc := new(mockService)
	svc.On("Unit", mock.Anything, "65f1c2a9b3e4d5f6a7b8c9d0").Return(nil, nil).Once()

	rr := serve(svc, "65f1c2a9b3e4d5f6a7b8c9d0")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `null`, rr.Body.String())
}

func TestUnitHandler_Errors(t *testing.T) {
	svc := new(mockService)
	svc.On("Unit", mock.Anything, "bad").Return(nil, fmt.Errorf("op: %w", storage.ErrInvalidID)).Once()
	svc.On("Unit", mock.Anything, "65f1c2a9b3e4d5f6a7b8c9d0").Return(nil, errors.New("db down")).Once()

	rr := serve(svc, "bad")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"success":false,"message":"Invalid id"}`, rr.Body.String())

	rr = serve(svc, "65f1c2a9b3e4d5f6a7b8c9d0")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"success":false,"message":"Something went wrong"}`, rr.Body.String())
}
