package main

import (
	"io"
	"os"

	"github.com/absfs/sealbox/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and reports a failure once on stderr
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		logging.Logger{Out: stderr}.Errorf("%v", err)
		return err
	}
	return nil
}
