package main

import "github.com/peekknuf/edascan/cmd"

func main() {
	cmd.Execute()
}
