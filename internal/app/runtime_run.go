package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

func (r *Runtime) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", r.httpServer.Addr)
	if err != nil {
		return err
	}
	return r.Serve(ctx, listener)
}

// Serve runs the API on listener until ctx is cancelled, then shuts the
// server down gracefully.
func (r *Runtime) Serve(ctx context.Context, listener net.Listener) error {
	r.logger.Info("dandi key api starting", "addr", listener.Addr().String(), "db_path", r.cfg.DBPath)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := r.httpServer.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return r.httpServer.Shutdown(shutdownCtx)
	})

	err := group.Wait()
	r.logger.Info("dandi key api stopped")
	return err
}

func (r *Runtime) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}
