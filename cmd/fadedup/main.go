// cmd/fadedup/main.go
package main

import (
	"fadedup/internal/app"
	"fadedup/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
