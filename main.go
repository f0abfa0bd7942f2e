package main

import "github.com/rsinghcodes/nutriai/cmd/nutriai"

func main() {
	nutriai.Execute()
}
