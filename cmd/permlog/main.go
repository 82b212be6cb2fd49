package main

import (
	"fmt"
	"os"

	"github.com/example/permlog/internal/cli"
	"github.com/example/permlog/internal/db"
)

func main() {
	err := cli.RootCmd().Execute()
	_ = db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
