package main

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

func init() {
	// keep xdg-open chatter out of the game's log
	browser.Stdout = io.Discard
}

func openURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open url %s: %w", url, err)
	}
	return nil
}
