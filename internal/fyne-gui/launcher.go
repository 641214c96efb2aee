package fynegui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"go-toolfx/internal/core/config"
	"go-toolfx/internal/core/utils"
)

// Toolkit hands control to a GUI event loop and returns once it exits.
type Toolkit interface {
	Launch(newApp ApplicationFactory, args []string) error
}

// Driver creates the fyne.App for a launch. The desktop package provides the
// real one; tests pass the headless test driver.
type Driver func(appID string) fyne.App

// Progress is shown on the terminal while the window is being prepared.
type Progress interface {
	Start() error
	UpdateMessage(message string)
	StopWithSuccess(message string) error
	StopWithFailure(message string) error
}

// Launcher is the Fyne Toolkit.
type Launcher struct {
	driver      Driver
	cfg         config.LaunchConfig
	logger      *utils.Logger
	newProgress func(message string) (Progress, error)
}

type LauncherOption func(*Launcher)

func WithLauncherLogger(logger *utils.Logger) LauncherOption {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithProgress shows a progress indicator from launch until Start is called.
func WithProgress(newProgress func(message string) (Progress, error)) LauncherOption {
	return func(l *Launcher) {
		l.newProgress = newProgress
	}
}

func NewLauncher(driver Driver, cfg config.LaunchConfig, opts ...LauncherOption) *Launcher {
	l := &Launcher{
		driver: driver,
		cfg:    cfg,
		logger: utils.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch runs the application lifecycle: construct, Init, Start, event loop,
// Stop. It blocks until the event loop exits.
func (l *Launcher) Launch(newApp ApplicationFactory, args []string) error {
	if newApp == nil {
		return utils.NewPreconditionError("application")
	}
	if l.driver == nil {
		return utils.NewPreconditionError("driver")
	}

	launchID := uuid.NewString()
	logger := l.logger.WithLaunch(launchID)
	logger.Info("Launching application", "app_id", l.cfg.AppID)

	progress := l.startProgress(logger)
	stopProgress := func(err error) {
		if progress == nil {
			return
		}
		var stopErr error
		if err != nil {
			stopErr = progress.StopWithFailure("Launch failed")
		} else {
			stopErr = progress.StopWithSuccess("Window ready")
		}
		if stopErr != nil {
			logger.WithError(stopErr).Debug("Failed to stop progress indicator")
		}
		progress = nil
	}

	step := func(message string) {
		if progress != nil {
			progress.UpdateMessage(message)
		}
	}

	stage, application, err := l.prepare(newApp, args, step)
	stopProgress(err)
	if err != nil {
		logger.WithError(err).Error("Launch failed")
		return err
	}

	if err := application.Start(stage); err != nil {
		logger.WithError(err).Error("Application failed to start")
		stage.abort()
		if stopErr := stop(application); stopErr != nil {
			err = errors.Join(err, stopErr)
		}
		return utils.NewLaunchError("application failed to start", err).WithContext("launch_id", launchID)
	}

	if stage.enterLoop() {
		logger.Debug("Entering event loop")
		stage.app.Run()
	} else {
		logger.Debug("Application quit during start, skipping event loop")
	}

	if err := stop(application); err != nil {
		return utils.NewLaunchError("application failed to stop", err).WithContext("launch_id", launchID)
	}

	logger.Info("Application exited")
	return nil
}

func stop(application Application) error {
	if stopper, ok := application.(Stopper); ok {
		return stopper.Stop()
	}
	return nil
}

// prepare reports each phase to step.
func (l *Launcher) prepare(newApp ApplicationFactory, args []string, step func(string)) (*Stage, Application, error) {
	step("Creating application")
	application, err := construct(newApp)
	if err != nil {
		return nil, nil, err
	}

	params := NewParameters(args)
	if binder, ok := application.(parameterBinder); ok {
		binder.bindParameters(params)
	}

	if initializer, ok := application.(Initializer); ok {
		step("Initializing")
		if err := initializer.Init(); err != nil {
			return nil, nil, utils.NewLaunchError("application failed to initialize", err)
		}
	}

	step("Opening window")
	fyneApp := l.driver(l.cfg.AppID)
	if fyneApp == nil {
		return nil, nil, utils.NewLaunchError("GUI driver did not create an application", nil)
	}

	if th := NewToolTheme(l.cfg.Theme); th != nil {
		fyneApp.Settings().SetTheme(th)
	}

	window := fyneApp.NewWindow(l.cfg.Title)
	if l.cfg.Width > 0 && l.cfg.Height > 0 {
		window.Resize(fyne.NewSize(l.cfg.Width, l.cfg.Height))
	}
	window.CenterOnScreen()
	window.SetMaster()

	return newStage(fyneApp, window, params), application, nil
}

func construct(newApp ApplicationFactory) (application Application, err error) {
	defer func() {
		if r := recover(); r != nil {
			application = nil
			err = utils.NewLaunchError("could not create the application", fmt.Errorf("panic: %v", r))
		}
	}()

	application = newApp()
	if application == nil {
		return nil, utils.NewLaunchError("application factory returned nil", nil)
	}
	return application, nil
}

func (l *Launcher) startProgress(logger *utils.Logger) Progress {
	if l.newProgress == nil {
		return nil
	}

	progress, err := l.newProgress("Launching " + l.cfg.Title)
	if err == nil {
		err = progress.Start()
	}
	if err != nil {
		logger.WithError(err).Debug("Progress indicator unavailable")
		return nil
	}
	return progress
}
