//go:build !ebiten

// Package gui runs the game in a desktop window. Builds without the ebiten
// tag carry only this stub.
package gui

import (
	"errors"

	"github.com/yeo-develop/crappybird/internal/config"
)

// ErrUnavailable is returned by Run when the binary was built without the
// ebiten tag.
var ErrUnavailable = errors.New("gui: window mode requires building with the 'ebiten' tag")

// Run always reports that the GUI build tag is missing.
func Run(config.FlappyConfig, int, int64, float64) error {
	return ErrUnavailable
}
