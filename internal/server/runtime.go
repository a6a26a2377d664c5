package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Run serves HTTP until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully: the listener first, then the
// scheduler, then the registered hooks.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if s.cron != nil {
		s.cron.Start()
		s.logger.Info("export schedule enabled", slog.String("schedule", s.schedule))
	}

	select {
	case err := <-errCh:
		if s.cron != nil {
			<-s.cron.Stop().Done()
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer shutdownCancel()

	var errs []error

	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	if s.cron != nil {
		select {
		case <-s.cron.Stop().Done():
		case <-shutdownCtx.Done():
			errs = append(errs, shutdownCtx.Err())
		}
	}

	for _, hook := range s.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			s.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		s.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	s.logger.Info("shutdown completed")
	return nil
}
