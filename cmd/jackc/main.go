package main

import (
	"errors"
	"os"

	"github.com/ltungv/jackc/cmd/jackc/cmd"
	"github.com/ltungv/jackc/internal/jack"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var lexErr *jack.LexError
		var parseErr *jack.ParseError
		if errors.As(err, &lexErr) || errors.As(err, &parseErr) {
			os.Exit(65)
		}
		os.Exit(74)
	}
}
