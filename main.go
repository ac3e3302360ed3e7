package main

import "github.com/shoreagents/shoreagents-asset-dog-sub011/cmd"

func main() {
	cmd.Execute()
}
