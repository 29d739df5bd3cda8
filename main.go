package main

import "github.com/tanaes/gapfisher/cmd"

func main() {
	cmd.Execute()
}
