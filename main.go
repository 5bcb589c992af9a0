package main

import (
	"github.com/Nrich-sunny/reviewcrawler/cmd"
)

func main() {
	cmd.Execute()
}
