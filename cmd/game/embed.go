package main

import "embed"

// configFS holds the default configs shipped inside the binary
//
//go:embed configs
var configFS embed.FS
