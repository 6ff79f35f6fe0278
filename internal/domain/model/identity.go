package model

// Identity данные пользователя, уже проверенные адаптером
type Identity struct {
	UserID      string
	DisplayName string
	IsTeacher   bool
}
