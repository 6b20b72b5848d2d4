// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/graphview/cmd/graphview/commands"

func main() {
	commands.Execute()
}
