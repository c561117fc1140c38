package main

import "github.com/ekomkassa/hubctl/cmd"

func main() {
	cmd.Execute()
}
