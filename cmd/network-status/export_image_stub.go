//go:build !imageoutput

package main

import (
	"context"
	"errors"

	"github.com/muurk/netstatus/internal/config"
)

var errNoImageOutput = errors.New("image output is not available in this build; rebuild with: go build -tags imageoutput ./cmd/network-status")

func exportImage(context.Context, *config.Config, string) error {
	return errNoImageOutput
}
