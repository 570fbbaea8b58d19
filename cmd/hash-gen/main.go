package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"bank-backoffice.backend/pkg/crypto"
)

var (
	stdout         io.Writer = os.Stdout
	generateHashFn           = generateHash
	fatalfFn                 = log.Fatalf
)

func resolvePassword(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", errors.New("usage: hash-gen [-cost N] <password>")
	}
	return args[0], nil
}

func generateHash(password string, cost int) (string, error) {
	crypto.SetCost(cost)
	return crypto.HashPassword(password)
}

func run(args []string) error {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	cost := fs.Int("cost", crypto.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := resolvePassword(fs.Args())
	if err != nil {
		return err
	}

	hash, err := generateHashFn(password, *cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintf(stdout, "Bcrypt Hash: %s\n", hash)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("%v", err)
	}
}
