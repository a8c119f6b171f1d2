package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey реализация Prompter поверх survey/v2
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey создает prompter для стандартного терминала
func NewSurvey() *Survey {
	return &Survey{}
}

// NewSurveyWithStdio создает prompter поверх заданных потоков
func NewSurveyWithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)}}
}

func (s *Survey) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, s.opts...)
	return answer, MapError(err)
}

func (s *Survey) Secret(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Password{Message: message}, &answer, s.opts...)
	return answer, MapError(err)
}

func (s *Survey) Select(message string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	p := &survey.Select{Message: message, Options: options, PageSize: 12}
	if def >= 0 && def < len(options) {
		p.Default = options[def]
	}

	var idx int
	if err := survey.AskOne(p, &idx, s.opts...); err != nil {
		return 0, MapError(err)
	}
	return idx, nil
}

func (s *Survey) MultiSelect(message string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	var idx []int
	err := survey.AskOne(
		&survey.MultiSelect{Message: message, Options: options, PageSize: 12},
		&idx,
		append(s.opts, survey.WithValidator(survey.Required))...,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return idx, nil
}

func (s *Survey) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.opts...)
	return answer, MapError(err)
}

// MapError приводит ошибки survey к ErrCancelled
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("%w: %w", ErrTerminal, err)
}
