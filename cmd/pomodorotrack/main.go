package main

import (
	"os"

	"github.com/leoarenas/pomodorotrack/app"
	"github.com/leoarenas/pomodorotrack/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
