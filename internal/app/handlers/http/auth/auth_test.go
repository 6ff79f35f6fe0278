package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func identityFor(t *testing.T, token, header string) model.Identity {
	t.Helper()
	var got model.Identity
	h := TeacherToken(token)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TokenHeader, header)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestTeacherToken(t *testing.T) {
	if id := identityFor(t, "secret", "secret"); !id.IsTeacher {
		t.Error("Совпавший токен должен давать роль преподавателя")
	}
	if id := identityFor(t, "secret", "other"); id.IsTeacher {
		t.Error("Неверный токен не должен давать роль преподавателя")
	}
	if id := identityFor(t, "", ""); id.IsTeacher {
		t.Error("Пустой настроенный токен не должен открывать доступ")
	}
}
