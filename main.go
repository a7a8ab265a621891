package main

import "github.com/durak-nlp/durak/cmd"

func main() {
	cmd.Execute()
}
