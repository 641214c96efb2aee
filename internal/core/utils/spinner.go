package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theckman/yacspin"
)

type Spinner struct {
	spinner *yacspin.Spinner
	out     io.Writer
}

func NewSpinner(message string) (*Spinner, error) {
	return NewSpinnerTo(os.Stderr, message)
}

// NewSpinnerTo creates a spinner drawing on w. Non-terminal writers get the
// plain, non-animated output yacspin falls back to.
func NewSpinnerTo(w io.Writer, message string) (*Spinner, error) {
	cfg := yacspin.Config{
		Writer:            w,
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[59],
		Suffix:            " " + message,
		SuffixAutoColon:   true,
		ColorAll:          true,
		Colors:            []string{"fgYellow"},
		StopCharacter:     "✓",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "✗",
		StopFailColors:    []string{"fgRed"},
	}

	spinner, err := yacspin.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Spinner{spinner: spinner, out: w}, nil
}

func (s *Spinner) Start() error {
	return s.spinner.Start()
}

func (s *Spinner) StopWithSuccess(message string) error {
	s.spinner.StopMessage(message)
	err := s.spinner.Stop()
	if err == nil {
		fmt.Fprintf(s.out, "✓ %s\n", message)
	}
	return err
}

func (s *Spinner) StopWithFailure(message string) error {
	s.spinner.StopFailMessage(message)
	err := s.spinner.StopFail()
	if err == nil {
		fmt.Fprintf(s.out, "✗ %s\n", message)
	}
	return err
}

func (s *Spinner) UpdateMessage(message string) {
	s.spinner.Message(message)
}
