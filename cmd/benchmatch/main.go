package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/leofalp/benchmatch/internal/cli"
)

var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
