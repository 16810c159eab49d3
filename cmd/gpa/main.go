package main

import (
	"fmt"
	"os"

	"github.com/yigit/gpacalc/internal/gpacli"
)

func main() {
	app := gpacli.NewApp(os.Stdout, os.Stderr)
	// cli.Exit errors are reported and exit inside Run; anything else lands here
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gpa:", err)
		os.Exit(1)
	}
}
