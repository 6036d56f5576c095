package main

import "server-relay/cmd"

func main() {
	cmd.Execute()
}
