package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/daemon"
	"github.com/standardbeagle/hop/internal/trace"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Run the candidate daemon: watch the roots, answer queries over a socket",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "socket",
			Usage: "Socket path (default: the user runtime dir)",
		},
	},
	Action: serveCommand,
}

func serveCommand(c *cli.Context) error {
	log := trace.FromEnv(c.Bool("verbose"))

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	socketPath := c.String("socket")
	if socketPath == "" {
		socketPath, err = daemon.SocketPath()
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := daemon.NewServer(scanOptions(cfg), log)
	return server.Run(ctx, socketPath)
}
