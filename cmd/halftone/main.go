// Halftone - perceptual colour conversion and halftone ramps
//
// Halftone converts colours between hex, sRGB, linear RGB, XYZ, Oklab and
// Oklch, and samples shading ramps along curved Oklch paths.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/halftone/internal/cli"

func main() {
	cli.Execute()
}
