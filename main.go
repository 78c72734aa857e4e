package main

import "github.com/wavelab/ldpc/cmd"

func main() {
	cmd.Execute()
}
