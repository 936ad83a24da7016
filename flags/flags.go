package flags

import (
	"io"
	"os"

	"github.com/gleb-zvonkov/web-client/exchange"
	"github.com/gleb-zvonkov/web-client/input"
	"github.com/gleb-zvonkov/web-client/output"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	ShowVersion     bool
	ShowLicense     bool
}

type terminalInfo struct {
	stdoutIsTerminal bool
}

func Parse(osArgs []string) (FlagSet, *OptionSet, error) {
	_, flagSet, optionSet, err := parse(osArgs, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
	return flagSet, optionSet, err
}

func parse(osArgs []string, term terminalInfo) ([]string, FlagSet, *OptionSet, error) {
	method := ""
	data := "\000" // "\000" is a special value that indicates user did not specify --data
	jsonPayload := "\000"
	var verbose bool
	var showVersion bool
	var showLicense bool

	flagSet := getopt.New()
	flagSet.SetParameters("URL")
	flagSet.StringVarLong(&method, "method", 'X', "HTTP method to use (GET or POST)")
	flagSet.StringVarLong(&data, "data", 'd', "request body as key=value pairs joined with '&'")
	flagSet.StringVarLong(&jsonPayload, "json", 0, "request body as raw JSON (implies POST)")
	flagSet.BoolVarLong(&verbose, "verbose", 'v', "report timing and size after the response")
	flagSet.BoolVarLong(&showVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&showLicense, "license", 0, "print license information and exit")
	flagSet.Parse(osArgs)

	inputOptions := input.Options{Method: method}
	if data != "\000" {
		inputOptions.Data = data
		inputOptions.HasData = true
	}
	if jsonPayload != "\000" {
		inputOptions.JSON = jsonPayload
		inputOptions.HasJSON = true
	}

	optionSet := &OptionSet{
		InputOptions: inputOptions,
		OutputOptions: output.Options{
			EnableColor: term.stdoutIsTerminal,
			Verbose:     verbose,
		},
		ShowVersion: showVersion,
		ShowLicense: showLicense,
	}
	return flagSet.Args(), flagSet, optionSet, nil
}
