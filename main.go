package main

import "github.com/dzjyyds666/tomlq/cmd"

func main() {
	cmd.Execute()
}
