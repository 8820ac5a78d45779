package main

import (
	// ====================== ARRCOMPAT IMPORTS ============================
	"github.com/inoxlang/arrcompat/internal/utils"

	// ====================== STDLIB ============================
	"fmt"
	"io"
	"os"
	"slices"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME = "arrcompat"
)

func main() {
	//handle completions
	completionCmd.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) > 1 && !slices.Contains(SUBCOMMANDS, args[1]) && !isFlag(args[1]) {
		fmt.Fprintf(errW, "unknown command '%s'\n", args[1])
		return ERROR_STATUS_CODE
	}

	root := newRootCommand(outW, errW)
	root.SetArgs(args[1:])

	var err error
	panicErr := utils.Recover(func() {
		err = root.Execute()
	})

	if panicErr != nil {
		fmt.Fprintln(errW, "panic:", panicErr)
		return ERROR_STATUS_CODE
	}
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}
