package main

import "github.com/theirongolddev/budgetbuddy/cmd"

func main() {
	cmd.Execute()
}
