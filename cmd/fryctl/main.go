package main

import "github.com/zlzmm5188/fryctl/cmd/fryctl/cmd"

func main() {
	cmd.Execute()
}
