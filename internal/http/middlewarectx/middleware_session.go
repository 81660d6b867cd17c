// Package middlewarectx содержит работу с сессионной cookie и HTTP middleware,
// требующий валидную сессию.
//
// SessionMiddleware проверяет токен из cookie и в случае успеха кладёт в контекст
// профиль пользователя. Иначе отвечает {success:false} с кодом 200,
// не раскрывая причину отказа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Profile — ключ для профиля пользователя в контексте
const Profile Key = "profile"

// Verifier описывает проверку сессионного токена.
type Verifier interface {
	VerifySession(token string) (*models.Profile, error)
}

// SessionMiddleware возвращает middleware, пропускающий только запросы с валидной сессией.
func SessionMiddleware(cookies *SessionCookies, verifier Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			profile, err := verifier.VerifySession(cookies.Token(r))
			if err != nil {
				log.Info("session rejected", sl.Err(err))
				render.JSON(w, r, response.Error(response.MsgUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), Profile, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFromContext возвращает профиль, положенный SessionMiddleware.
func ProfileFromContext(ctx context.Context) (*models.Profile, bool) {
	profile, ok := ctx.Value(Profile).(*models.Profile)
	return profile, ok && profile != nil
}
