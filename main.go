// Package main is the entry point for the nefdecode CLI tool.
//
// nefdecode is a command-line utility for decoding Nikon Electronic Format
// (NEF) raw camera files into a linear sensor raster plus structured
// metadata.
package main

import "github.com/go-nef/nefdecode/cmd"

func main() {
	cmd.Execute()
}
