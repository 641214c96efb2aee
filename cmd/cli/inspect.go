package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/pflag"

	"go-toolfx/internal/core/command"
	"go-toolfx/internal/core/config"
	fynegui "go-toolfx/internal/fyne-gui"
)

// InspectCommand holds the options of the inspector tool.
type InspectCommand struct {
	command.CommonFlags

	Key   int
	Fail  bool
	Title string
	Files []string
}

func NewInspectCommand() (command.Command, error) {
	return &InspectCommand{}, nil
}

func (c *InspectCommand) Spec() command.Spec {
	return command.Spec{
		Name:        "toolfx-inspect",
		Description: "Opens a window showing how the tool was invoked.",
	}
}

func (c *InspectCommand) DefineFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Key, "key", "k", 0, "Session key shown in the window.")
	fs.BoolVarP(&c.Fail, "fail", "f", false, "Fail during start-up.")
	fs.StringVar(&c.Title, "title", "", "Window title (defaults to the tool name).")
	command.Required(fs, "key")
}

func (c *InspectCommand) SetArgs(args []string) {
	c.Files = args
}

func (c *InspectCommand) Validate() error {
	if c.Key < 0 {
		return fmt.Errorf("--key must not be negative, got %d", c.Key)
	}
	return nil
}

// InspectApplication renders the parsed command and tool metadata.
type InspectApplication struct {
	fynegui.Base[*InspectCommand]

	metadata    config.ToolMetadata
	cmd         *InspectCommand
	form        *widget.Form
	copyButton  *widget.Button
	closeButton *widget.Button
}

func NewInspectApplication() fynegui.Application {
	return &InspectApplication{}
}

func (a *InspectApplication) Init() error {
	meta, err := config.ReadToolMetadata(bytes.NewReader(toolProperties), nil)
	if err != nil {
		return err
	}
	a.metadata = meta
	return nil
}

func (a *InspectApplication) Start(stage *fynegui.Stage) error {
	cmd, err := a.GetCommand(NewInspectCommand)
	if err != nil {
		return err
	}
	if cmd.Fail {
		return errors.New("start-up failure requested with --fail")
	}
	a.cmd = cmd

	title := cmd.Title
	if title == "" {
		title = a.metadata.Name
	}
	stage.SetTitle(title)

	a.form = a.buildForm(stage.Parameters())
	a.copyButton = widget.NewButtonWithIcon("Copy arguments", theme.ContentCopyIcon(), func() {
		stage.Window().Clipboard().SetContent(strings.Join(stage.Parameters().Raw(), " "))
		stage.Notify(fynegui.NoticeSuccess, "Arguments copied")
	})
	a.closeButton = widget.NewButtonWithIcon("Close", theme.CancelIcon(), stage.Quit)

	stage.SetContent(container.NewBorder(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(a.copyButton, a.closeButton),
		nil, nil,
		container.NewVScroll(a.form),
	))
	stage.Show()
	return nil
}

func (a *InspectApplication) buildForm(params fynegui.Parameters) *widget.Form {
	files := "(none)"
	if len(a.cmd.Files) > 0 {
		files = strings.Join(a.cmd.Files, "\n")
	}

	return widget.NewForm(
		widget.NewFormItem("Tool", widget.NewLabel(a.metadata.Name)),
		widget.NewFormItem("Version", widget.NewLabel(a.metadata.Version)),
		widget.NewFormItem("Source", sourceLink(a.metadata.RepositoryURL)),
		widget.NewFormItem("Key", widget.NewLabel(strconv.Itoa(a.cmd.Key))),
		widget.NewFormItem("Files", widget.NewLabel(files)),
		widget.NewFormItem("Arguments", widget.NewLabel(strings.Join(params.Raw(), " "))),
	)
}

func sourceLink(raw string) fyne.CanvasObject {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return widget.NewLabel(raw)
	}
	return widget.NewHyperlink(raw, u)
}
