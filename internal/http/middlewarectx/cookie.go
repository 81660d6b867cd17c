package middlewarectx

import (
	"net/http"
	"time"
)

// CookieName имя cookie с сессионным токеном.
const CookieName = "highschoolprep"

// SessionCookies выставляет, читает и удаляет сессионную cookie.
type SessionCookies struct {
	secure bool
	maxAge time.Duration
}

// NewSessionCookies создаёт SessionCookies. secure включает флаг Secure
// (в боевом окружении), maxAge задаёт срок жизни cookie, 0 означает сессионную cookie.
func NewSessionCookies(secure bool, maxAge time.Duration) *SessionCookies {
	return &SessionCookies{
		secure: secure,
		maxAge: maxAge,
	}
}

// Set записывает токен в cookie ответа.
func (c *SessionCookies) Set(w http.ResponseWriter, token string) {
	cookie := c.base()
	cookie.Value = token
	if c.maxAge > 0 {
		cookie.MaxAge = int(c.maxAge.Seconds())
		cookie.Expires = time.Now().Add(c.maxAge)
	}
	http.SetCookie(w, cookie)
}

// Clear удаляет cookie на клиенте.
func (c *SessionCookies) Clear(w http.ResponseWriter) {
	cookie := c.base()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

// Token возвращает токен из cookie запроса или пустую строку.
func (c *SessionCookies) Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (c *SessionCookies) base() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteNoneMode,
	}
}
