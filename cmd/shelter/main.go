package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"shelter-pet-tracker/internal/cli"
)

func main() {
	root := cli.NewRootCommand(cli.Options{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
