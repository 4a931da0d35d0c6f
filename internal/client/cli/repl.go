package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errExit = errors.New("exit")

// execIface is the command surface the REPL needs. The real App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	dispatch(ctx context.Context, name string, args []string) error
}

// runREPL reads one line at a time from reader, splits it into a command
// name and arguments and hands them to a. The prompt shows statusFn().
// The loop ends on EOF, on a cancelled ctx, or when a command returns errExit.
//
// Handler errors are not fatal; dispatch reports them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "ks (%s)> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if err := a.dispatch(ctx, strings.ToLower(parts[0]), parts[1:]); errors.Is(err, errExit) {
			return
		}
	}
}
