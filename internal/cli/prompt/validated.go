package prompt

// Validator проверяет введенное значение
type Validator func(string) error

// Reporter сообщает пользователю об ошибке валидации
type Reporter interface {
	Warn(format string, args ...interface{})
}

// AskValid повторяет ввод, пока validate не пропустит значение.
// Значение по умолчанию принимается без проверки.
func AskValid(p Prompter, r Reporter, message, def string, validate Validator) (string, error) {
	for {
		answer, err := p.Input(message, def)
		if err != nil {
			return "", err
		}

		if def != "" && answer == def {
			return answer, nil
		}

		if err := validate(answer); err != nil {
			r.Warn("%v", err)
			continue
		}

		return answer, nil
	}
}

// AskValidSecret то же, что AskValid, для скрытого ввода
func AskValidSecret(p Prompter, r Reporter, message string, validate Validator) (string, error) {
	for {
		answer, err := p.Secret(message)
		if err != nil {
			return "", err
		}

		if err := validate(answer); err != nil {
			r.Warn("%v", err)
			continue
		}

		return answer, nil
	}
}
