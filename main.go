package main

import "github.com/spacetoolbox/spacetoolbox/cmd"

func main() {
	cmd.Execute()
}
