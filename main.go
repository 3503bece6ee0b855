package main

import (
	"log"

	"github.com/anoixa/label-bed/cmd"
	"github.com/anoixa/label-bed/config"
)

func main() {
	log.Printf("label bed %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
