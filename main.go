package main

import (
	"github.com/byxorna/recipebox/cmd"
)

func main() {
	cmd.Execute()
}
