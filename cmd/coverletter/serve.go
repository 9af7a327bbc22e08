package main

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/fwojciec/coverletter"
	"github.com/fwojciec/coverletter/fiber"
)

// shutdownTimeout bounds how long in-flight requests may run after an
// interrupt.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	var generation coverletter.GenerationService
	if deps.Orchestrator != nil {
		generation = deps.Orchestrator
	} else {
		deps.Logger.Warn("no model API key configured; generation is disabled")
	}

	server := fiber.NewServer(fiber.Config{
		JobScraper:     deps.JobScraper,
		CompanyCrawler: deps.CompanyCrawler,
		Generation:     generation,
		Sessions:       deps.Sessions,
		Renderer:       deps.Renderer,
		Profile:        deps.Profile,
		StaticDir:      c.StaticDir,
		LogOutput:      deps.Stderr,
	})

	ln, err := net.Listen("tcp", net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
	if err != nil {
		return err
	}
	deps.Logger.Info("listening", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- server.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = server.Shutdown(ctx)

	// Serve may not have taken ownership of ln yet.
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}
	<-errc
	return err
}
