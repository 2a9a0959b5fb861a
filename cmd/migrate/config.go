package main

import (
	"fmt"
	"os"
	"slices"
)

var commands = []string{"up", "down", "status", "create"}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

func validateCommand(command, name string) error {
	if !slices.Contains(commands, command) {
		return fmt.Errorf("unknown command %q, use one of %v", command, commands)
	}
	if command == "create" && name == "" {
		return fmt.Errorf("name is required for 'create' command")
	}
	return nil
}
