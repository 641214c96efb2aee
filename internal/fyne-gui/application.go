package fynegui

import (
	"fmt"

	"go-toolfx/internal/core/command"
	"go-toolfx/internal/core/utils"
)

// Application is a GUI tool started by a Launcher.
type Application interface {
	// Start runs once the main window exists and before the event loop.
	Start(stage *Stage) error
}

// Initializer is implemented by applications that prepare state before any
// window is created.
type Initializer interface {
	Init() error
}

// Stopper is implemented by applications that clean up after the event loop
// has exited.
type Stopper interface {
	Stop() error
}

// ApplicationFactory builds a fresh application for one launch.
type ApplicationFactory func() Application

type parameterBinder interface {
	bindParameters(params Parameters)
}

// Base gives an application access to the command it was launched with.
// Embed it in the concrete application type.
type Base[T command.Command] struct {
	params Parameters
	bound  bool
}

func (b *Base[T]) bindParameters(params Parameters) {
	b.params = params
	b.bound = true
}

// Parameters returns the launch arguments.
func (b *Base[T]) Parameters() Parameters {
	return b.params
}

// GetCommand parses the launch arguments again with factory. Failures carry
// the same error types as the executor's own parse.
func (b *Base[T]) GetCommand(factory command.Factory) (T, error) {
	var zero T
	if factory == nil {
		return zero, utils.NewPreconditionError("command factory")
	}
	if !b.bound {
		return zero, utils.NewLaunchError("application was not started by a launcher", nil)
	}

	cmd, err := command.Parse(factory, b.params.Raw())
	if err != nil {
		return zero, err
	}

	typed, ok := cmd.(T)
	if !ok {
		return zero, utils.NewInstantiationError(
			fmt.Sprintf("command factory produced %T, which is not the application's command type", cmd), nil)
	}
	return typed, nil
}
