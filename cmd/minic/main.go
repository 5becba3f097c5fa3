// Command minic compiles a single source file to three-address IR and
// prints the result to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"minic/driver"
	"minic/ir"
	"minic/report"
)

func main() {
	os.Exit(run())
}

// run parses command-line arguments and executes the compiler, returning
// the process exit code.
func run() int {
	cli := olive.NewCLI("minic", "minic compiles a small C++-like source file to three-address IR", true)
	cli.AddPrimaryArg("source-path", "the path to the source file to compile", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "argument error:", err)
		return 1
	}

	sourcePath, ok := result.PrimaryArg()
	if !ok {
		fmt.Fprintln(os.Stderr, "argument error: a source file must be specified")
		return 1
	}

	logLevel := parseLogLevel(result.Arguments["loglevel"].(string))

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not read %s: %s\n", sourcePath, err)
		return 1
	}

	rep := report.New(logLevel)
	c := driver.New(rep, sourcePath)
	compiled := c.Run(string(source))

	if rep.AnyErrors() {
		return 1
	}

	fmt.Print(ir.Dump(compiled.Instructions))
	return 0
}

func parseLogLevel(name string) report.LogLevel {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
