package main

import (
	"context"
	"os"

	"github.com/malusev998/tariff-rates/cli/cmd"
)

func main() {
	config := &cmd.Config{
		Ctx:        context.Background(),
		NewService: newService,
	}

	if err := cmd.Execute(config); err != nil {
		os.Exit(1)
	}
}
