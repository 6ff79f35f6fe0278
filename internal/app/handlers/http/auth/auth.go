package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// TokenHeader заголовок с токеном преподавателя
const TokenHeader = "X-Teacher-Token"

type identityKey struct{}

// TeacherToken выставляет Identity в контекст запроса. Совпавший токен дает роль преподавателя;
// проверку прав выполняет фасад.
func TeacherToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := model.Identity{UserID: "http", DisplayName: "http"}
			got := r.Header.Get(TokenHeader)
			if token != "" && subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1 {
				id = model.Identity{UserID: "admin", DisplayName: "admin", IsTeacher: true}
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
		})
	}
}

// IdentityFrom Identity из контекста запроса
func IdentityFrom(ctx context.Context) model.Identity {
	id, _ := ctx.Value(identityKey{}).(model.Identity)
	return id
}
