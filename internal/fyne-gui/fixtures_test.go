package fynegui

import (
	"bytes"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/pflag"

	"go-toolfx/internal/core/command"
	"go-toolfx/internal/core/config"
	"go-toolfx/internal/core/utils"
)

const fineProperties = `tool.name=ToolExecutorFyneTest
tool.version=0.1.0
tool.repo.url=https://github.com/example/toolfx
`

type mockCommand struct {
	command.CommonFlags
	Key    int
	Faulty bool
}

func (c *mockCommand) Spec() command.Spec {
	return command.Spec{Name: "ToolExecutorFyneTest", Description: "Something something agile."}
}

func (c *mockCommand) DefineFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Faulty, "faulty", "f", false, "Faulty execution.")
	fs.IntVarP(&c.Key, "key", "k", 0, "Key.")
	command.Required(fs, "key")
}

func newMockCommand() (command.Command, error) {
	return &mockCommand{}, nil
}

type otherCommand struct {
	command.CommonFlags
}

func (c *otherCommand) Spec() command.Spec             { return command.Spec{Name: "other"} }
func (c *otherCommand) DefineFlags(fs *pflag.FlagSet) { fs.IntP("key", "k", 0, "Key.") }

// mockApplication records what happened to it during a launch.
type mockApplication struct {
	Base[*mockCommand]

	factory  command.Factory
	keepOpen bool
	events   []string
	cmd      *mockCommand
	stage    *Stage
	initErr  error
	stopErr  error
}

func (a *mockApplication) Init() error {
	a.events = append(a.events, "init")
	return a.initErr
}

func (a *mockApplication) Start(stage *Stage) error {
	a.events = append(a.events, "start")
	a.stage = stage

	factory := a.factory
	if factory == nil {
		factory = newMockCommand
	}
	cmd, err := a.GetCommand(factory)
	if err != nil {
		return err
	}
	a.cmd = cmd

	if cmd.Faulty {
		return errors.New("nope")
	}
	if !a.keepOpen {
		stage.Quit()
	}
	return nil
}

func (a *mockApplication) Stop() error {
	a.events = append(a.events, "stop")
	return a.stopErr
}

// recordingToolkit stands in for the GUI toolkit.
type recordingToolkit struct {
	launches [][]string
	err      error
}

func (r *recordingToolkit) Launch(newApp ApplicationFactory, args []string) error {
	r.launches = append(r.launches, args)
	return r.err
}

type fakeProgress struct {
	started bool
	steps   []string
	success string
	failure string
}

func (p *fakeProgress) UpdateMessage(message string) {
	p.steps = append(p.steps, message)
}

func (p *fakeProgress) Start() error {
	p.started = true
	return nil
}

func (p *fakeProgress) StopWithSuccess(message string) error {
	p.success = message
	return nil
}

func (p *fakeProgress) StopWithFailure(message string) error {
	p.failure = message
	return nil
}

func testConfig() config.LaunchConfig {
	return config.LaunchConfig{
		AppID:  "io.github.go-toolfx.test",
		Title:  "Test Tool",
		Width:  640,
		Height: 480,
		Theme:  config.ThemeDark,
	}
}

// testDriver returns a headless driver and a pointer to the app it created.
func testDriver() (Driver, *fyne.App) {
	var created fyne.App
	return func(string) fyne.App {
		created = test.NewApp()
		return created
	}, &created
}

func newTestBase(logs *bytes.Buffer) *command.ToolExecutor {
	return command.NewToolExecutor(
		command.WithLogger(utils.NewLoggerTo(logs, "debug", "text")),
		command.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}),
		command.WithMetadata(command.EmbeddedMetadata([]byte(fineProperties))),
	)
}
