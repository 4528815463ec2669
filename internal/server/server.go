package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// shutdownTimeout bounds how long in-flight solves may run after ctx is done.
// Connections still open after it are closed, which cancels their solves.
const shutdownTimeout = 10 * time.Second

// Serve accepts connections on ln until ctx is cancelled, then stops accepting
// and lets in-flight requests finish. Request contexts are not derived from
// ctx, so a running solve completes unless shutdownTimeout expires first.
// It returns nil after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.Infof("Listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	klog.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		klog.Warningf("Shutdown timed out after %s, closing open connections", shutdownTimeout)
		_ = srv.Close()
		<-errCh
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", addr)
	}
	return Serve(ctx, ln, handler)
}
