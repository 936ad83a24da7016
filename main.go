package webclient

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gleb-zvonkov/web-client/exchange"
	"github.com/gleb-zvonkov/web-client/flags"
	"github.com/gleb-zvonkov/web-client/input"
	"github.com/gleb-zvonkov/web-client/output"
	"github.com/gleb-zvonkov/web-client/version"
	"github.com/pkg/errors"
)

func Main() error {
	flagSet, optionSet, err := flags.Parse(os.Args)
	if err != nil {
		return err
	}

	err = run(flagSet.Args(), optionSet, os.Stdout, os.Stderr)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(os.Stderr)
	}
	return err
}

// run is the whole pipeline: build, validate, send, render. A failed
// request is reported on stderr and still returns nil, so the process
// exits zero. Only a usage error or a malformed --json payload makes
// the run itself fail.
func run(args []string, optionSet *flags.OptionSet, stdout, stderr io.Writer) error {
	if optionSet.ShowVersion {
		fmt.Fprintln(stdout, version.Current())
		return nil
	}
	if optionSet.ShowLicense {
		version.PrintLicenses(stdout)
		return nil
	}

	in, err := input.BuildRequest(args, &optionSet.InputOptions)
	if err != nil {
		return err
	}

	errPrinter := output.NewPrettyPrinter(output.PrettyPrinterConfig{
		Writer:      stderr,
		EnableColor: false,
	})

	if err := input.ValidateTarget(in.URL); err != nil {
		errPrinter.PrintError(in, errors.Cause(err).Error())
		return nil
	}

	resp, err := exchange.SendRequest(in, &optionSet.ExchangeOptions)
	if err != nil {
		cause := errors.Cause(err)
		if _, ok := cause.(*exchange.JSONPayloadError); ok {
			errPrinter.PrintRequestLine(in)
			return err
		}
		errPrinter.PrintError(in, cause.Error())
		return nil
	}

	if !resp.IsSuccess() {
		statusError := exchange.StatusError{Code: resp.StatusCode}
		errPrinter.PrintError(in, statusError.Error())
		return nil
	}

	writer := bufio.NewWriter(stdout)
	defer writer.Flush()
	printer := output.NewPrettyPrinter(output.PrettyPrinterConfig{
		Writer:      writer,
		EnableColor: optionSet.OutputOptions.EnableColor,
	})
	if err := printer.PrintRequestLine(in); err != nil {
		return err
	}
	if err := printer.PrintBody(resp.Body); err != nil {
		return err
	}

	if optionSet.OutputOptions.Verbose {
		errPrinter.PrintHeader(resp.Header)
		errPrinter.PrintStats(resp.Duration, int64(len(resp.Body)))
	}
	return nil
}
