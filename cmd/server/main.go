// Command server runs the vocabulary backend HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/infinitevocab/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}
