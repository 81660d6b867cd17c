package subject

import (
	"context"
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

func (m *mockService) Subject(ctx context.Context, id string) (*models.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subject), args.Error(1)
}

func TestSubjectHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		id         string
		setupMock  func(m *mockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "предмет найден",
			id:   "65f1c2a9b3e4d5f6a7b8c9d0",
			setupMock: func(m *mockService) {
				m.On("Subject", mock.Anything, "65f1c2a9b3e4d5f6a7b8c9d0").
					Return(&models.Subject{ID: "65f1c2a9b3e4d5f6a7b8c9d0", Name: "Math", Chapters: []*models.Chapter{}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"_id":"65f1c2a9b3e4d5f6a7b8c9d0","name":"Math","chapters":[]}`,
		},
		{
			name: "предмета нет",
			id:   "65f1c2a9b3e4d5f6a7b8c9d1",
			setupMock: func(m *mockService) {
				m.On("Subject", mock.Anything, "65f1c2a9b3e4d5f6a7b8c9d1").Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name: "некорректный id",
			id:   "abc",
			setupMock: func(m *mockService) {
				m.On("Subject", mock.Anything, "abc").Return(nil, fmt.Errorf("op: %w", storage.ErrInvalidID)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/getGradeById/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subjectId", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			New(log, svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
