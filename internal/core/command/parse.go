package command

import (
	"strings"

	"github.com/spf13/cobra"

	"go-toolfx/internal/core/utils"
)

// Parse creates a command with factory and populates it from args.
// Required options are not enforced when help or version was requested.
func Parse(factory Factory, args []string) (Command, error) {
	cmd, _, err := parse(factory, args)
	return cmd, err
}

// parse also returns the cobra command used for parsing so callers can print
// usage on failure. It is nil only when instantiation failed.
func parse(factory Factory, args []string) (Command, *cobra.Command, error) {
	cmd, err := Instantiate(factory)
	if err != nil {
		return nil, nil, err
	}

	cc := newCobraCommand(cmd)
	name := cc.Name()

	if err := cc.ParseFlags(args); err != nil {
		return nil, cc, utils.NewParseError("invalid arguments for "+name, err)
	}

	if HelpRequested(cmd) || VersionRequested(cmd) {
		return cmd, cc, nil
	}

	if err := cc.ValidateRequiredFlags(); err != nil {
		return nil, cc, utils.NewParseError("invalid arguments for "+name, err)
	}

	positional := cc.Flags().Args()
	if receiver, ok := cmd.(ArgsReceiver); ok {
		receiver.SetArgs(positional)
	} else if len(positional) > 0 {
		return nil, cc, utils.NewParseError("unexpected argument(s) for "+name+": "+strings.Join(positional, " "), nil)
	}

	if v, ok := cmd.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, cc, utils.NewParseError("invalid arguments for "+name, err)
		}
	}

	return cmd, cc, nil
}

func newCobraCommand(cmd Command) *cobra.Command {
	spec := cmd.Spec()
	cc := &cobra.Command{
		Use:           spec.Name,
		Short:         spec.Description,
		Long:          spec.Description,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	common := cmd.commonFlags()
	fs := cc.Flags()
	fs.SortFlags = false
	fs.BoolVarP(&common.Help, "help", "h", false, "Show this help message and exit.")
	fs.BoolVarP(&common.Version, "version", "v", false, "Print version information and exit.")
	cmd.DefineFlags(fs)

	common.usage = renderUsage(cc)
	return cc
}

func renderUsage(cc *cobra.Command) string {
	usage := cc.UsageString()
	if cc.Long == "" {
		return usage
	}
	return cc.Long + "\n\n" + usage
}

// Usage returns the help text computed when cmd was parsed.
func Usage(cmd Command) string {
	return cmd.commonFlags().usage
}
