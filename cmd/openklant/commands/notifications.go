package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/open-inwoner/openklant/internal/notifications"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

type notificationsServeOptions struct {
	addr          string
	token         string
	natsURL       string
	subjectPrefix string
}

func newNotificationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Receive ZGW notifications",
	}

	cmd.AddCommand(newNotificationsServeCommand(a))

	return cmd
}

func newNotificationsServeCommand(a *app) *cobra.Command {
	opts := notificationsServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification webhook",
		Long: `Run the webhook the notification component delivers to.

Every notification is logged. With --nats-url, notifications about
klantcontacten, internetaken and partijen are published on
<prefix>.<kanaal>.<resource>.<actie>. Metrics are served on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return a.runNotifications(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.token, "webhook-token", "", "token the notification component presents")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "", "NATS server to publish notifications to")
	cmd.Flags().StringVar(&opts.subjectPrefix, "subject-prefix", notifications.DefaultSubjectPrefix, "first token of published subjects")

	return cmd
}

func (a *app) runNotifications(ctx context.Context, cmd *cobra.Command, opts notificationsServeOptions) error {
	logger := a.logger(cmd)

	var publisher notifications.Hook

	if opts.natsURL != "" {
		conn, err := notifications.ConnectNATS(opts.natsURL, "openklant-notifications")
		if err != nil {
			return err
		}
		defer conn.Close()

		publisher = notifications.NewNATSPublisher(conn, opts.subjectPrefix)
	}

	registry := notifications.NewRegistry(logger)
	registry.RegisterAll(notifications.DefaultHooks(publisher, logger)...)

	listener, err := listen(ctx, opts.addr)
	if err != nil {
		return err
	}

	return serve(ctx, listener, notificationsRouter(registry, opts.token, logger), logger)
}

// notificationsRouter mounts the webhook next to its metrics.
func notificationsRouter(registry *notifications.Registry, token string, logger openklant.Logger) http.Handler {
	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(collectors.NewGoCollector())

	handler := notifications.NewHandler(registry, notifications.HandlerOptions{
		Token:             token,
		Logger:            logger,
		MetricsRegisterer: metricsRegistry,
	})

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{Registry: metricsRegistry}))
	router.Mount("/", handler.Routes())

	return router
}
