//go:build tinygo

package main

import (
	"glint/app"
	"glint/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
