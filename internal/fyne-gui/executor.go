package fynegui

import (
	"go-toolfx/internal/core/command"
	"go-toolfx/internal/core/utils"
)

// Executor runs the shared pre-flight checks and then hands control to a
// GUI toolkit instead of running the tool in-process.
type Executor struct {
	base    *command.ToolExecutor
	toolkit Toolkit
}

func NewExecutor(base *command.ToolExecutor, toolkit Toolkit) *Executor {
	return &Executor{base: base, toolkit: toolkit}
}

// InvokeAsFyne parses args with factory and, unless help or version output
// already handled the invocation, launches the application built by newApp.
// It blocks until the GUI exits.
func (e *Executor) InvokeAsFyne(newApp ApplicationFactory, factory command.Factory, args []string) error {
	if newApp == nil {
		return utils.NewPreconditionError("application")
	}
	if e.base == nil {
		return utils.NewPreconditionError("tool executor")
	}
	if e.toolkit == nil {
		return utils.NewPreconditionError("toolkit")
	}

	cmd, outcome, err := e.base.Preflight(factory, args)
	switch outcome {
	case command.OutcomeHandled:
		return nil
	case command.OutcomeFailed:
		return err
	}

	e.base.Logger().Debug("Handing control to GUI toolkit", "tool", cmd.Spec().Name)
	return e.toolkit.Launch(newApp, args)
}
