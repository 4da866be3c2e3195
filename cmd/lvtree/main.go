// Command lvtree classifies graph documents and answers rooted-tree queries
// (lowest common ancestors, bridges) from the command line.
package main

import "github.com/katalvlaran/lvtree/cmd/lvtree/commands"

func main() {
	commands.Execute()
}
