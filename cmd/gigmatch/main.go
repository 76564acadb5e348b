// Command gigmatch serves and queries the project matching engine.
package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/okian/gigmatch/internal/adapters/cli"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes the root command and reports a failure on stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cli.New(stderr).Error(err)
		return 1
	}
	return 0
}
