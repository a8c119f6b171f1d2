// Package prompttest содержит заранее записанный Prompter для тестов меню
package prompttest

import (
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
)

// Answer один ответ сценария. Err имеет приоритет над значением.
type Answer struct {
	Text    string
	Index   int
	Indexes []int
	Yes     bool
	Err     error
}

// Text ответ для Input/Secret
func Text(s string) Answer { return Answer{Text: s} }

// Choose ответ для Select
func Choose(i int) Answer { return Answer{Index: i} }

// ChooseMany ответ для MultiSelect
func ChooseMany(i ...int) Answer { return Answer{Indexes: i} }

// Yes ответ для Confirm
func Yes() Answer { return Answer{Yes: true} }

// No ответ для Confirm
func No() Answer { return Answer{} }

// Cancel имитирует Ctrl+C
func Cancel() Answer { return Answer{Err: prompt.ErrCancelled} }

// Scripted отдает ответы по порядку; когда сценарий закончился, ввод отменяется
type Scripted struct {
	mu       sync.Mutex
	answers  []Answer
	Messages []string
}

// New создает сценарий
func New(answers ...Answer) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining количество неиспользованных ответов
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Scripted) next(message string) Answer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, message)
	if len(s.answers) == 0 {
		return Cancel()
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *Scripted) Input(message, def string) (string, error) {
	a := s.next(message)
	if a.Err != nil {
		return "", a.Err
	}
	if a.Text == "" {
		return def, nil
	}
	return a.Text, nil
}

func (s *Scripted) Secret(message string) (string, error) {
	a := s.next(message)
	return a.Text, a.Err
}

func (s *Scripted) Select(message string, options []string, _ int) (int, error) {
	a := s.next(message)
	if a.Err != nil {
		return 0, a.Err
	}
	if a.Index < 0 || a.Index >= len(options) {
		return 0, fmt.Errorf("prompttest: %q has no option %d", message, a.Index)
	}
	return a.Index, nil
}

func (s *Scripted) MultiSelect(message string, options []string) ([]int, error) {
	a := s.next(message)
	if a.Err != nil {
		return nil, a.Err
	}
	for _, i := range a.Indexes {
		if i < 0 || i >= len(options) {
			return nil, fmt.Errorf("prompttest: %q has no option %d", message, i)
		}
	}
	return a.Indexes, nil
}

func (s *Scripted) Confirm(message string, _ bool) (bool, error) {
	a := s.next(message)
	return a.Yes, a.Err
}
