package main

import "github.com/tastebud-labs/foodadmin/cmd"

func main() {
	cmd.Execute()
}
