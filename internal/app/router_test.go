package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"go.uber.org/zap"
)

const testToken = "secret"

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Type = config.StorageMemory
	cfg.Admin.Token = testToken
	cfg.Quiz.QuestionsPerTest = 5

	app, err := newApp(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Не удалось создать приложение: %v", err)
	}
	return app
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	rec := doRequest(t, app.Router(), http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Ожидался статус 200, получено %d", rec.Code)
	}
}

func TestQuestionsRequireTeacherToken(t *testing.T) {
	app := newTestApp(t)
	h := app.Router()

	body := []byte(`{"kind":"true_false","prompt":"Земля круглая?","correct_index":0}`)
	if rec := doRequest(t, h, http.MethodPost, "/questions", "", body); rec.Code != http.StatusForbidden {
		t.Errorf("Без токена ожидался статус 403, получено %d", rec.Code)
	}
	if rec := doRequest(t, h, http.MethodPost, "/questions", "wrong", body); rec.Code != http.StatusForbidden {
		t.Errorf("С неверным токеном ожидался статус 403, получено %d", rec.Code)
	}
	if rec := doRequest(t, h, http.MethodGet, "/results", "", nil); rec.Code != http.StatusForbidden {
		t.Errorf("Без токена список результатов должен быть закрыт, получено %d", rec.Code)
	}
}

func TestAddAndListQuestions(t *testing.T) {
	app := newTestApp(t)
	h := app.Router()

	rec := doRequest(t, h, http.MethodPost, "/questions", testToken,
		[]byte(`{"kind":"multiple_choice","prompt":"2+2?","options":["3","4","5"],"correct_index":1}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Ожидался статус 201, получено %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil || created.ID == 0 {
		t.Fatalf("Неверный ответ при добавлении: %s", rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodGet, "/questions", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Ожидался статус 200, получено %d", rec.Code)
	}
	var questions []model.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
		t.Fatalf("Не удалось разобрать список вопросов: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != created.ID || questions[0].CorrectIndex != 1 {
		t.Errorf("Неверный список вопросов: %+v", questions)
	}
}

func TestAddQuestionValidation(t *testing.T) {
	app := newTestApp(t)
	h := app.Router()

	rec := doRequest(t, h, http.MethodPost, "/questions", testToken,
		[]byte(`{"kind":"multiple_choice","prompt":"2+2?","options":["4"],"correct_index":0}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Ожидался статус 400, получено %d", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/questions", testToken, []byte(`{not json`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Для некорректного JSON ожидался статус 400, получено %d", rec.Code)
	}
}

func TestResultsEndpoints(t *testing.T) {
	app := newTestApp(t)
	h := app.Router()
	ctx := context.Background()

	teacher := model.Identity{UserID: "t", DisplayName: "Teacher", IsTeacher: true}
	qid, err := app.quizService.AddQuestion(ctx, teacher, model.KindTrueFalse, "Вода мокрая?", nil, 0)
	if err != nil {
		t.Fatalf("AddQuestion вернул ошибку: %v", err)
	}

	student := model.Identity{UserID: "42", DisplayName: "Alice"}
	if _, err := app.quizService.StartTest(ctx, student, 0); err != nil {
		t.Fatalf("StartTest вернул ошибку: %v", err)
	}
	if _, err := app.quizService.SubmitAnswer(ctx, student, qid, 0); err != nil {
		t.Fatalf("SubmitAnswer вернул ошибку: %v", err)
	}

	rec := doRequest(t, h, http.MethodGet, "/results", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Ожидался статус 200, получено %d", rec.Code)
	}
	var all dto.AllResultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("Не удалось разобрать результаты: %v", err)
	}
	if all.TotalUsers != 1 || all.Users[0].UserID != "42" || all.Users[0].Results[0].Percentage != 100 {
		t.Errorf("Неверные результаты: %+v", all)
	}

	rec = doRequest(t, h, http.MethodGet, "/results/42", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Ожидался статус 200, получено %d", rec.Code)
	}
	var one dto.UserResultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &one); err != nil {
		t.Fatalf("Не удалось разобрать историю: %v", err)
	}
	if one.DisplayName != "Alice" || len(one.Results) != 1 || one.Results[0].Grade != model.GradeExcellent {
		t.Errorf("Неверная история пользователя: %+v", one)
	}

	rec = doRequest(t, h, http.MethodGet, "/results/report.pdf", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Ожидался статус 200, получено %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Ожидался application/pdf, получено %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("Ответ не похож на PDF")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	h := app.Router()

	doRequest(t, h, http.MethodPost, "/questions", testToken,
		[]byte(`{"kind":"true_false","prompt":"Небо синее?","correct_index":0}`))

	rec := doRequest(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Ожидался статус 200, получено %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `quiz_questions_added_total{kind="true_false"} 1`) {
		t.Errorf("Счетчик добавленных вопросов не найден:\n%s", rec.Body.String())
	}
}

func TestNewAppJSONStorage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = config.StorageJSON
	cfg.Storage.DataDir = t.TempDir()

	app, err := newApp(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Не удалось создать приложение с JSON-хранилищем: %v", err)
	}
	teacher := model.Identity{UserID: "t", IsTeacher: true}
	if _, err := app.quizService.AddQuestion(context.Background(), teacher, model.KindTrueFalse, "Да?", nil, 1); err != nil {
		t.Fatalf("AddQuestion вернул ошибку: %v", err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown вернул ошибку: %v", err)
	}
}

func TestNewAppSQLiteStorage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = config.StorageSQLite
	cfg.Storage.SQLitePath = ":memory:"

	app, err := newApp(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Не удалось создать приложение с SQLite: %v", err)
	}
	defer app.Shutdown(context.Background())

	n, err := app.questionService.Count(context.Background())
	if err != nil || n != 0 {
		t.Errorf("Ожидался пустой банк, получено %d, %v", n, err)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)
	app.config.Server.AllowedOrigins = []string{"https://admin.example.org"}
	h := app.Router()

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "https://admin.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", auth.TokenHeader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.org" {
		t.Errorf("Ожидался разрешённый origin, получено %q", got)
	}
}
