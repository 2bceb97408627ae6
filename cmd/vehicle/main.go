package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/insurance-backend/internal/app"
	"github.com/yungbote/insurance-backend/internal/platform/shutdown"
)

func main() {
	a, err := app.NewVehicle()
	if err != nil {
		fmt.Printf("failed to initialize vehicle service: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	if err := a.Run(ctx); err != nil {
		a.Log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
