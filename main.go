package main

import "github.com/theirongolddev/wkbudget/cmd"

func main() {
	cmd.Execute()
}
