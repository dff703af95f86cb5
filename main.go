package main

import (
	"github.com/public-awesome/marketplace/cmd"
)

func main() {
	cmd.Execute()
}
