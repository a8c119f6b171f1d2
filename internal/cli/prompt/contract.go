package prompt

// Prompter интерфейс терминального ввода.
// Каждый метод возвращает ErrCancelled, если пользователь прервал ввод.
type Prompter interface {
	Input(message, def string) (string, error)
	Secret(message string) (string, error)
	Select(message string, options []string, def int) (int, error)
	MultiSelect(message string, options []string) ([]int, error)
	Confirm(message string, def bool) (bool, error)
}
