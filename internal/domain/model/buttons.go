package model

// Константы для кнопок. Привязаны к названиям обработчиков.
// Не следует добавлять/изменять константы без изменения логики в обработчике start
const (
	StartTestKey     = "start_test"
	QuickQuestionKey = "quick_question"
	MyResultsKey     = "my_results"
	AddQuestionKey   = "add_question"
	ViewQuestionsKey = "view_questions"
	ViewResultsKey   = "view_results"
	AnswerKey        = "answer"
	QuickAnswerKey   = "quick_answer"
	KindTrueFalseKey = "kind_tf"
	KindMultipleKey  = "kind_mcq"
	TFTrueKey        = "tf_true"
	TFFalseKey       = "tf_false"
)

// StudentButtons кнопки главного меню ученика
var StudentButtons = []string{StartTestKey, QuickQuestionKey, MyResultsKey}

// TeacherButtons кнопки главного меню преподавателя
var TeacherButtons = []string{AddQuestionKey, ViewQuestionsKey, ViewResultsKey, StartTestKey}
