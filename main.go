package main

import "FieldPath/internal/ui"

func main() {
	ui.RunApp()
}
