package main

import "budgetlens/cmd"

func main() {
	cmd.Execute()
}
