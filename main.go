package main

import "github.com/nilovelez/wptv-sessions-list/cmd"

func main() {
	cmd.Execute()
}
