package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted: el usuario canceló el formulario (Ctrl+C).
var ErrAborted = errors.New("aborted")

// Prompter abstrae la terminal para poder probar los comandos interactivos.
type Prompter interface {
	Input(message, def, help string, validate func(string) error) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct {
	stdio terminal.Stdio
}

// NewSurveyPrompter usa AlecAivazis/survey sobre stdin y los writers dados.
func NewSurveyPrompter(out, errOut io.Writer) Prompter {
	return &surveyPrompter{stdio: terminal.Stdio{
		In:  os.Stdin,
		Out: asFileWriter(out),
		Err: errOut,
	}}
}

func (p *surveyPrompter) Input(message, def, help string, validate func(string) error) (string, error) {
	var out string
	opts := []survey.AskOpt{survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err)}
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, ok := ans.(string)
			if !ok {
				return fmt.Errorf("unexpected answer type %T", ans)
			}
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def, Help: help}, &out, opts...)
	return out, translateSurveyErr(err)
}

func (p *surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &out, survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err))
	return out, translateSurveyErr(err)
}

func (p *surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out,
		survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err))
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// survey necesita un terminal.FileWriter; si out no lo es, caemos a stdout.
func asFileWriter(w io.Writer) terminal.FileWriter {
	if fw, ok := w.(terminal.FileWriter); ok {
		return fw
	}
	return os.Stdout
}
