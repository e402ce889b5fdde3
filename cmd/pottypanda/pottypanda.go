package main

import (
	"log"

	"github.com/robogirl96/pottypanda/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
