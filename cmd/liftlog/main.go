package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	// Autoloads .env file to supply environment variables
	_ "github.com/joho/godotenv/autoload"
)

const usage = `usage: liftlog <command> [flags]

commands:
  login           -username NAME -password PASS
  logout
  register        -username NAME -email ADDR -password PASS -picture FILE
  whoami
  exercises       [-q QUERY]
  log             -exercise NAME -set WEIGHT:REPS ... [-workout ID]
  create-workout  -name NAME | -from-calendar [-date YYYY-MM-DD]
                  -exercise NAME -set WEIGHT:REPS ... [-exercise NAME -set ...]
  workouts
  history         -exercise NAME [-from YYYY-MM-DD] [-to YYYY-MM-DD] | -day YYYY-MM-DD | [-q QUERY]
  details         -workout ID [-name NAME]
  delete          -workout ID [-exercise NAME]
  stats
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	a, err := newApp(ctx, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "liftlog: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := cmd(ctx, a, args[1:]); err != nil {
		a.log.WithError(err).WithField("command", args[0]).Debug("command failed")
		fmt.Fprintf(stderr, "liftlog: %s\n", alert(err))
		return 1
	}
	return 0
}
