package grades

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Grades(ctx context.Context) ([]*models.Grade, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Grade), args.Error(1)
}

func TestGradesHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		grades     []*models.Grade
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "дерево классов",
			grades: []*models.Grade{{
				ID:   "g1",
				Name: "Grade 9",
				Subjects: []*models.Subject{{
					ID:   "s1",
					Name: "Math",
					Chapters: []*models.Chapter{{
						ID:    "c1",
						Name:  "Algebra",
						Units: []*models.Unit{{ID: "u1", Name: "Equations", IsFree: true}},
					}},
				}},
			}},
			wantStatus: http.StatusOK,
			wantBody: `[{"_id":"g1","name":"Grade 9","subjects":[{"_id":"s1","name":"Math","chapters":[
				{"_id":"c1","name":"Algebra","units":[{"_id":"u1","name":"Equations","isFree":true}]}]}]}]`,
		},
		{
			name:       "пустой каталог",
			grades:     []*models.Grade{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "ошибка хранилища",
			err:        errors.New("db down"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("Grades", mock.Anything).Return(nil, tt.err).Once()
			} else {
				svc.On("Grades", mock.Anything).Return(tt.grades, nil).Once()
			}

			rr := httptest.NewRecorder()
			New(log, svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/getGrades", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
