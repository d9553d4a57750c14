package commands

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-inwoner/openklant/internal/notifications"
	"github.com/open-inwoner/openklant/pkg/openklant"
	"github.com/open-inwoner/openklant/pkg/openklant/openklanttest"
)

type fakeServerOptions struct {
	addr        string
	token       string
	basePath    string
	pageSize    int
	notifyURL   string
	notifyToken string
}

func newFakeServerCommand(a *app) *cobra.Command {
	opts := fakeServerOptions{}

	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Run an in-memory klantinteracties API",
		Long: `Run an in-memory klantinteracties API for local development.

Records live until the process stops. With --notify-url every created record
is announced to that webhook as a ZGW notification.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return a.runFakeServer(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&opts.token, "server-token", "", "token clients must present, empty disables the check")
	cmd.Flags().StringVar(&opts.basePath, "base-path", "/klantinteracties/api/v1", "path prefix of every collection")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "default page size")
	cmd.Flags().StringVar(&opts.notifyURL, "notify-url", "", "webhook receiving a notification per created record")
	cmd.Flags().StringVar(&opts.notifyToken, "notify-token", "", "token sent to the notification webhook")

	return cmd
}

func (a *app) runFakeServer(ctx context.Context, cmd *cobra.Command, opts fakeServerOptions) error {
	logger := a.logger(cmd)

	listener, err := listen(ctx, opts.addr)
	if err != nil {
		return err
	}

	serverOpts := openklanttest.Options{
		Token:    opts.token,
		BasePath: opts.basePath,
		PageSize: opts.pageSize,
		Logger:   logger,
	}

	if opts.notifyURL != "" {
		sender, err := notifications.NewSender(opts.notifyURL, opts.notifyToken)
		if err != nil {
			_ = listener.Close()

			return err
		}

		origin := "http://" + advertisedHost(listener.Addr())
		serverOpts.OnCreate = notifyOnCreate(ctx, sender, origin, logger)
	}

	return serve(ctx, listener, openklanttest.New(serverOpts), logger)
}

// notifyOnCreate announces created records without holding up the request
// that created them.
func notifyOnCreate(ctx context.Context, sender *notifications.Sender, origin string, logger openklant.Logger) func(string, map[string]any) {
	return func(path string, record map[string]any) {
		n := notifications.FromRecord(origin, path, record, time.Now())

		go func() {
			err := sender.Send(context.WithoutCancel(ctx), n)
			if err != nil {
				logger.Warn("Sending notification failed", map[string]interface{}{
					"resourceUrl": n.ResourceURL,
					"error":       err.Error(),
				})
			}
		}()
	}
}

// advertisedHost replaces an unspecified listen host with localhost.
func advertisedHost(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}

	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}

	return net.JoinHostPort(host, port)
}
