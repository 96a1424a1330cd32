package main

import (
	"fmt"
	"os"

	"dmunoz/cartola-csv/cmd/categorize"
	"dmunoz/cartola-csv/cmd/ingest"
	"dmunoz/cartola-csv/cmd/root"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env silently before anything logs; config.Load picks the
	// variables up later.
	_ = godotenv.Load()

	root.Init()
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
