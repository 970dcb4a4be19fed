package main

import "github.com/income-recorder/backend/cmd"

func main() {
	cmd.Execute()
}
