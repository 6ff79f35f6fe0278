package service

import "github.com/IT-Nick/quizbot/internal/domain/model"

// Ключи сообщений
const (
	WelcomeStudent   = "welcome_student"
	WelcomeTeacher   = "welcome_teacher"
	QuestionText     = "question"
	AnswerCorrect    = "answer_correct"
	AnswerWrong      = "answer_wrong"
	TestFinished     = "test_finished"
	QuickTally       = "quick_tally"
	EmptyBank        = "empty_bank"
	NoActiveSession  = "no_active_session"
	StaleAnswer      = "stale_answer"
	PermissionDenied = "permission_denied"
	StorageFailure   = "storage_failure"
	ValidationFailed = "validation_failed"
	InternalError    = "internal_error"
	RateLimited      = "rate_limited"
	NoResults        = "no_results"
	MyResultsHeader  = "my_results_header"
	AllResultsHeader = "all_results_header"
	ResultLine       = "result_line"
	NoQuestions      = "no_questions"
	QuestionsHeader  = "questions_header"
	QuestionLine     = "question_line"
	AddChooseKind    = "add_choose_kind"
	AddEnterPrompt   = "add_enter_prompt"
	AddEnterOption   = "add_enter_option"
	AddNeedOptions   = "add_need_options"
	AddEnterCorrect  = "add_enter_correct"
	AddChooseTF      = "add_choose_tf"
	AddBadNumber     = "add_bad_number"
	AddDoneWord      = "add_done_word"
	QuestionAdded    = "question_added"
)

var defaults = map[string]string{
	WelcomeStudent:   "Привет, %s! Выберите действие:",
	WelcomeTeacher:   "Здравствуйте, %s! Панель преподавателя:",
	QuestionText:     "Вопрос %d из %d:\n\n%s",
	AnswerCorrect:    "✅ Правильно!",
	AnswerWrong:      "❌ Неправильно. Правильный ответ: %s",
	TestFinished:     "Тест завершён!\nПравильных ответов: %d из %d (%.0f%%)\nОценка: %s",
	QuickTally:       "Ваш счёт: %d из %d",
	EmptyBank:        "В банке пока нет вопросов.",
	NoActiveSession:  "У вас нет активного теста. Нажмите «Начать тест».",
	StaleAnswer:      "Этот вопрос уже пройден.",
	PermissionDenied: "Эта команда доступна только преподавателю.",
	StorageFailure:   "Не удалось сохранить результат, попробуйте ответить ещё раз.",
	ValidationFailed: "Некорректные данные.",
	InternalError:    "Произошла ошибка, попробуйте позже.",
	RateLimited:      "Слишком много запросов, подождите немного.",
	NoResults:        "Вы ещё не проходили тест.",
	MyResultsHeader:  "Ваши результаты:",
	AllResultsHeader: "Результаты учеников:",
	ResultLine:       "%s: %d/%d (%.0f%%) %s",
	NoQuestions:      "Вопросов пока нет.",
	QuestionsHeader:  "Вопросы в банке:",
	QuestionLine:     "#%d [%s] %s\nПравильный ответ: %s",
	AddChooseKind:    "Выберите тип вопроса:",
	AddEnterPrompt:   "Введите текст вопроса:",
	AddEnterOption:   "Введите вариант ответа %d (или «%s», чтобы закончить):",
	AddNeedOptions:   "Нужно минимум два варианта ответа.",
	AddEnterCorrect:  "Введите номер правильного ответа (1–%d):",
	AddChooseTF:      "Какой ответ правильный?",
	AddBadNumber:     "Введите число от 1 до %d.",
	AddDoneWord:      "готово",
	QuestionAdded:    "Вопрос #%d добавлен.",

	model.StartTestKey:     "📝 Начать тест",
	model.QuickQuestionKey: "🎲 Случайный вопрос",
	model.MyResultsKey:     "📊 Мои результаты",
	model.AddQuestionKey:   "➕ Добавить вопрос",
	model.ViewQuestionsKey: "📋 Список вопросов",
	model.ViewResultsKey:   "👥 Результаты учеников",
	model.KindTrueFalseKey: "Верно / неверно",
	model.KindMultipleKey:  "Выбор ответа",
	model.TFTrueKey:        "Верно",
	model.TFFalseKey:       "Неверно",

	"grade_" + model.GradeExcellent:   "отлично",
	"grade_" + model.GradeVeryGood:    "очень хорошо",
	"grade_" + model.GradeAcceptable:  "удовлетворительно",
	"grade_" + model.GradeNeedsReview: "нужно повторить материал",
}
