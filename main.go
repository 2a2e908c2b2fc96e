package main

import "github.com/fastify-skills/validate-rules/cmd"

func main() {
	cmd.Execute()
}
