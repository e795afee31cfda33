// Command argroute-sample demonstrates routing with every placeholder kind.
//
// Try running it without arguments to choose from every command, or with a partial command like "migrate" or "stub practice".
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/saylorsolutions/argroute/cli"
	"github.com/saylorsolutions/argroute/env"
	"github.com/saylorsolutions/argroute/prompt"
	"github.com/saylorsolutions/argroute/route"
	"github.com/saylorsolutions/argroute/signalx"
	"github.com/saylorsolutions/argroute/slogx"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

var smdID = route.Choice(route.Question{
	Kind:    route.QuestionSelect,
	Name:    "#smdId",
	Message: "Please input #smdId",
	Choices: []route.Option{
		{Label: "Brand", Value: "Brand"},
		{Label: "Category", Value: "Category"},
		{Label: "Product", Value: "Product"},
	},
})

func main() {
	ctx, stop := signalx.InterruptCtx(context.Background())
	code := run(ctx, os.Args, os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}

// run executes the sample with the raw process arguments.
// A nil asker uses a [prompt.Terminal] configured from settings.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, asker route.Asker) int {
	var (
		name    = "argroute-sample"
		printer = cli.NewPrinter()
		out     = cli.NewPrinter()
	)
	printer.Redirect(stderr)
	out.Redirect(stdout)
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	reg := registry(out)
	if err := reg.Validate(); err != nil {
		printer.Errorln(err)
		return exitFailed
	}

	defaults := env.FromOS().Settings(cli.Settings{
		Skip:     1,
		LogLevel: slogx.DefaultLevel,
	})
	fs := cli.SettingsFlags(name, defaults)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printer.Printf("Usage: %s [flags] [command tokens...]\n\nFlags:\n%s\nCommands:\n%s", name, fs.FlagUsages(), reg.Usage())
	}
	settings, rest, err := cli.ParseSettings(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return exitOK
		}
		printer.Errorln(err)
		return exitUsage
	}
	if settings.List {
		out.Print(reg.Usage())
		return exitOK
	}

	level, err := slogx.ParseLevel(settings.LogLevel)
	if err != nil {
		printer.Errorln(err)
		return exitUsage
	}
	log := slogx.NewLogger(stderr, level, name)
	if asker == nil {
		asker = prompt.NewTerminal(prompt.WithAccessible(settings.Accessible || !prompt.IsTerminal(os.Stdin)))
	}

	router := route.New(reg, asker,
		route.WithSkip(settings.Skip),
		route.WithLogger(log),
		route.WithOutput(printer),
	)
	// The program name is the first raw token, like os.Args.
	if err := router.Dispatch(ctx, append([]string{name}, rest...)); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("Interrupted")
			return exitFailed
		}
		printer.Errorln(err)
		return exitFailed
	}
	return exitOK
}

func registry(out *cli.Printer) *route.Registry {
	reg := route.NewRegistry().
		Type("#smdId", smdID).
		Type("#recordId", route.Number).
		Type("#recordIds", route.NumberList).
		Type("#names", route.StringList).
		Type("#name", route.String).
		Type("#yesOrNo", route.Boolean).
		Shape("practice_boolean", "#yesOrNo").
		Shape("practice_number", "#recordId").
		Shape("practice_numbers", "#recordIds").
		Shape("practice_strings", "#names").
		Shape("fixture", "sync").
		Shape("fixture", "import", "#smdId", "#recordIds").
		Shape("migrate", "run").
		Shape("migrate", "rollback").
		Shape("migrate", "clear").
		Shape("migrate", "reset").
		Shape("stub", "practice", "#name").
		Shape("stub", "smd", "#smdId").
		Shape("scaffold", "model", "#smdId").
		Shape("scaffold", "model_test", "#smdId")

	for _, shape := range reg.Shapes() {
		reg.Handle(shape.ID(), echo(out, shape.ID()))
	}
	reg.Handle("practice_number", func(_ context.Context, args ...any) error {
		out.Printf("RUN practice_number %v\n", args...)
		out.Printf("RUN type of recordId is %T\n", args[0])
		return nil
	})
	reg.Handle("practice_numbers", func(_ context.Context, args ...any) error {
		out.Printf("RUN practice_numbers %v\n", args...)
		if nums, ok := args[0].([]float64); ok && len(nums) > 0 {
			out.Printf("RUN type of recordIds[0] is %T\n", nums[0])
		}
		return nil
	})
	return reg
}

// echo creates a handler that prints its command ID and arguments.
func echo(out *cli.Printer, id route.CommandID) route.Handler {
	return func(_ context.Context, args ...any) error {
		msg := "RUN " + string(id)
		for _, arg := range args {
			msg += fmt.Sprintf(" %v", arg)
		}
		out.Println(msg)
		return nil
	}
}
