// Command postctl administers a running postwall service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/postwall/internal/app"
	"github.com/dropDatabas3/postwall/internal/config"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cl := &client{
		BaseURL:   envOr("POSTWALL_URL", "http://localhost:8080"),
		OutFormat: envOr("POSTWALL_OUT", "text"),
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Out:       os.Stdout,
	}

	root := &cobra.Command{
		Use:           "postctl",
		Short:         "Admin CLI for the postwall API",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cl.BaseURL, "url", cl.BaseURL, "base URL of the API (env POSTWALL_URL)")
	root.PersistentFlags().StringVar(&cl.OutFormat, "out", cl.OutFormat, "output format: json|text (env POSTWALL_OUT)")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cl.Out = cmd.OutOrStdout()
	}

	root.AddCommand(
		healthCmd(cl),
		resourceCmd(cl, "users", "/users", describeUsers),
		resourceCmd(cl, "posts", "/posts", describePosts),
		migrateCmd(),
	)
	return root
}

func healthCmd(cl *client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the readiness endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := cl.call(cmd.Context(), http.MethodGet, "/readyz")
			if err != nil {
				return err
			}
			cl.print(data, func() string {
				var r struct{ Status string }
				_ = json.Unmarshal(data, &r)
				return r.Status
			})
			return nil
		},
	}
}

// resourceCmd builds "<name> list" and "<name> purge --yes".
func resourceCmd(cl *client, name, path string, describe func(json.RawMessage) string) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: "Manage " + name}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all " + name,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := cl.call(cmd.Context(), http.MethodGet, path)
			if err != nil {
				return err
			}
			cl.print(data, func() string { return describe(data) })
			return nil
		},
	}

	var yes bool
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete all " + name,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all %s without --yes", name)
			}
			data, err := cl.call(cmd.Context(), http.MethodDelete, path)
			if err != nil {
				return err
			}
			cl.print(data, func() string { return "deleted all " + name })
			return nil
		},
	}
	purge.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	cmd.AddCommand(list, purge)
	return cmd
}

func describeUsers(data json.RawMessage) string {
	var users []struct{ ID, Name, Email string }
	if err := json.Unmarshal(data, &users); err != nil {
		return string(data)
	}
	var b strings.Builder
	for _, u := range users {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	fmt.Fprintf(&b, "%d users", len(users))
	return b.String()
}

func describePosts(data json.RawMessage) string {
	var posts []struct {
		ID      string
		Content string
		User    *struct{ Name string }
	}
	if err := json.Unmarshal(data, &posts); err != nil {
		return string(data)
	}
	var b strings.Builder
	for _, p := range posts {
		author := "-"
		if p.User != nil {
			author = p.User.Name
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\n", p.ID, author, p.Content)
	}
	fmt.Fprintf(&b, "%d posts", len(posts))
	return b.String()
}

func migrateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "postctl"})

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			c, err := app.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			res, err := c.Migrate(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied=%v skipped=%v in %s\n", res.Applied, res.Skipped, res.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML config file")
	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
