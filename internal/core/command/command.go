// Package command parses tool arguments into typed command values and handles
// the flags every tool shares (help and version).
package command

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go-toolfx/internal/core/utils"
)

const (
	msgNoConstructor     = "could not find a no-arguments constructor for the given command"
	msgConstructorFailed = "could not create a new instance of the command"
)

// Spec describes a command for usage output.
type Spec struct {
	Name        string
	Description string
}

// CommonFlags holds the options every command understands. Commands embed it.
type CommonFlags struct {
	Help    bool
	Version bool

	usage string
}

func (c *CommonFlags) commonFlags() *CommonFlags {
	return c
}

// Command is the typed result of parsing a tool's arguments.
type Command interface {
	Spec() Spec
	DefineFlags(fs *pflag.FlagSet)
	commonFlags() *CommonFlags
}

// Validator is implemented by commands with cross-field rules.
type Validator interface {
	Validate() error
}

// ArgsReceiver is implemented by commands that accept positional arguments.
type ArgsReceiver interface {
	SetArgs(args []string)
}

// Factory creates an empty command ready to be populated by Parse.
type Factory func() (Command, error)

// HelpRequested reports whether -h/--help was given.
func HelpRequested(cmd Command) bool {
	return cmd.commonFlags().Help
}

// VersionRequested reports whether -v/--version was given.
func VersionRequested(cmd Command) bool {
	return cmd.commonFlags().Version
}

// Required marks options that must be present unless help or version is
// requested.
func Required(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := cobra.MarkFlagRequired(fs, name); err != nil {
			panic(fmt.Sprintf("command: cannot mark unknown flag %q as required", name))
		}
	}
}

// Instantiate calls factory and turns every way it can fail into an
// instantiation error.
func Instantiate(factory Factory) (cmd Command, err error) {
	if factory == nil {
		return nil, utils.NewInstantiationError(msgNoConstructor, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			cmd = nil
			err = utils.NewInstantiationError(msgConstructorFailed, fmt.Errorf("panic: %v", r))
		}
	}()

	cmd, err = factory()
	if err != nil {
		return nil, utils.NewInstantiationError(msgConstructorFailed, err)
	}
	if isNil(cmd) {
		return nil, utils.NewInstantiationError(msgNoConstructor, nil)
	}
	return cmd, nil
}

func isNil(cmd Command) bool {
	if cmd == nil {
		return true
	}
	v := reflect.ValueOf(cmd)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
