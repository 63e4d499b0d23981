package session

// Level уровень flash-сообщения.
type Level string

// Допустимые уровни flash-сообщений.
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Flash одноразовое уведомление: показывается на следующей
// отрисованной странице и после этого исчезает.
type Flash struct {
	Level   Level
	Message string
}
