// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jusogo/jusogo/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
