package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/zegl/indirect/indirection"
	"github.com/zegl/indirect/indirection/ir"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("indirect", pflag.ContinueOnError)
	langFlag := flags.String("lang", "en", "language of the report (en, zh)")
	colorFlag := flags.String("color", "auto", "highlight labels (auto, always, never)")
	emitIR := flags.Bool("emit-ir", false, "print the LLVM IR of the demo instead of running it")
	debug := flags.Bool("debug", false, "log the observed chain")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		log.Println(err)
		return 1
	}

	if *emitIR {
		fmt.Fprint(stdout, ir.String(indirection.Value))
		return 0
	}

	lang, err := indirection.ParseLang(*langFlag)
	if err != nil {
		log.Println(err)
		return 1
	}

	useColor, err := parseColor(*colorFlag)
	if err != nil {
		log.Println(err)
		return 1
	}

	obs := indirection.Observe(indirection.NewChain(indirection.Value))
	if *debug {
		log.Printf("observed chain: %+v", obs)
	}

	err = indirection.Report(stdout, obs, indirection.Options{
		Lang:  lang,
		Color: useColor,
	})
	if err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func parseColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return !color.NoColor, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("unknown color mode: %q", mode)
}
