// Package shell runs command sessions, either interactively or from scripts.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/vidcat/vidcat/command"
	"github.com/vidcat/vidcat/constant"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/history"
	"github.com/vidcat/vidcat/log"
	"golang.org/x/term"
)

// Options configures an interactive session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Prompt is shown before each command when reading from a terminal.
	Prompt string
	// Interactive forces the survey prompt on or off. When absent it is
	// enabled if In is a terminal.
	Interactive *bool
}

// reader yields one command line per call and io.EOF at the end of input.
type reader func() (string, error)

// Run greets the user, executes commands until EXIT or end of input, and says goodbye.
// Valid commands are remembered in the shell history.
func Run(d *command.Dispatcher, options *Options) error {
	if options.In == nil {
		options.In = os.Stdin
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	next := scanReader(options.In)
	if isInteractive(options) {
		next = promptReader(options)
	}

	fmt.Fprintln(options.Out, constant.Greeting)
	defer fmt.Fprintln(options.Out, constant.Farewell)

	return ignoreExit(loop(d, next, func(line string) {
		if !command.IsValid(line) {
			return
		}
		if err := history.Remember(line); err != nil {
			log.Warnf("remember %q: %v", line, err)
		}
	}))
}

// RunScript executes every line of r in order, stopping early at EXIT.
func RunScript(d *command.Dispatcher, r io.Reader) error {
	return ignoreExit(loop(d, scanReader(r), nil))
}

// RunFiles executes script files in one shared session. EXIT in any file ends the whole run.
func RunFiles(d *command.Dispatcher, paths ...string) error {
	for _, path := range paths {
		f, err := filesystem.API().Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}

		log.Infof("running script %s", path)
		err = loop(d, scanReader(f), nil)
		_ = f.Close()

		if errors.Is(err, command.ErrExit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func loop(d *command.Dispatcher, next reader, seen func(string)) error {
	for {
		line, err := next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if seen != nil {
			seen(line)
		}

		if err := d.Execute(line); err != nil {
			return err
		}
	}
}

func ignoreExit(err error) error {
	if errors.Is(err, command.ErrExit) {
		return nil
	}
	return err
}

func scanReader(r io.Reader) reader {
	scanner := bufio.NewScanner(r)
	return func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

func promptReader(options *Options) reader {
	return func() (string, error) {
		var line string
		err := survey.AskOne(
			&survey.Input{Message: options.Prompt, Suggest: history.SuggestMany},
			&line,
			survey.WithIcons(func(icons *survey.IconSet) {
				icons.Question.Text = ""
			}),
		)
		if errors.Is(err, terminal.InterruptErr) {
			return "", io.EOF
		}
		return line, err
	}
}

func isInteractive(options *Options) bool {
	if options.Interactive != nil {
		return *options.Interactive
	}
	f, ok := options.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
