package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/studyprep/internal/client/session"
)

// execIface is the command surface the REPL drives. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	route() session.Route
	status() string
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	CompleteProfile(ctx context.Context) error
	Enroll(ctx context.Context) error
	Colleges(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
	Retry(ctx context.Context) error
}

var alwaysCommands = []string{"help", "status", "retry", "exit"}

// commandsFor lists the commands offered on a route.
func commandsFor(r session.Route) []string {
	var cmds []string
	switch r {
	case session.RouteLogin:
		cmds = []string{"login", "signup"}
	case session.RouteCompleteProfile:
		cmds = []string{"complete-profile", "enroll", "colleges", "logout"}
	case session.RouteMain:
		cmds = []string{"profile", "logout"}
	}
	return append(cmds, alwaysCommands...)
}

// runREPL reads commands from reader until EOF or "exit". A command that is
// not offered on the current route is refused. Handler errors are reported
// by the handlers themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "studyprep (%s)> ", a.status())

		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "input error:", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		if cmd == "quit" {
			cmd = "exit"
		}

		available := commandsFor(a.route())
		if !slices.Contains(available, cmd) {
			fmt.Fprintf(w, "Unknown or unavailable command: %s (type 'help')\n", cmd)
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands:", strings.Join(available, ", "))
		case "status":
			fmt.Fprintln(w, "Status:", a.status())
		case "retry":
			_ = a.Retry(ctx)
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "complete-profile":
			_ = a.CompleteProfile(ctx)
		case "enroll":
			_ = a.Enroll(ctx)
		case "colleges":
			_ = a.Colleges(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit":
			fmt.Fprintln(w, "Bye!")
			return
		}
	}
}
