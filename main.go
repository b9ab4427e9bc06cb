package main

import (
	"github.com/getsynq/formschema/cmd"
)

func main() {
	cmd.Execute()
}
