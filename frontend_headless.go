//go:build headless

package main

import (
	"context"
	"errors"
)

func init() {
	compiledFeatures = append(compiledFeatures, "gui:headless")
}

func RunGUI(ctx context.Context, c *Console) error {
	return errors.New("gui: not available in headless build")
}
