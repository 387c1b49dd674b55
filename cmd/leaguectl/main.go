package main

import (
	"github.com/mcoot/leaguebot-go/internal/cli"
)

func main() {
	cli.Execute()
}
