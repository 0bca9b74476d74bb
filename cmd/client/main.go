package main

import (
	"context"

	"github.com/avasiliev/notekeep/internal/client/cli"
	"github.com/avasiliev/notekeep/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
