package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/internal/api"
	"github.com/matzehuels/viewalign/pkg/buildinfo"
	"github.com/matzehuels/viewalign/pkg/cache"
	"github.com/matzehuels/viewalign/pkg/observability"
	"github.com/matzehuels/viewalign/pkg/pipeline"
)

// redisEnv names the environment variable read when --redis is not given.
const redisEnv = "VIEWALIGN_REDIS_URL"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the align, orient and tags operations over HTTP.

Plans are cached on disk by default. With --redis (or ` + redisEnv + `)
the cache is shared through Redis instead.`,
		Example: `  viewalign serve --addr :9000
  viewalign serve --redis redis://localhost:6379/0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.loadSettings()
			if err != nil {
				return err
			}

			if redisURL == "" {
				redisURL = os.Getenv(redisEnv)
			}

			var cc cache.Cache
			switch {
			case noCache:
				cc = cache.NewNullCache()
			case redisURL != "":
				prog := newProgress(c.Logger)
				spin := newSpinnerWithContext(ctx, "Connecting to Redis...")
				spin.Start()
				rc, err := cache.NewRedisCache(ctx, redisURL, appName+":")
				if err != nil {
					spin.StopWithError("Redis unavailable")
					return fmt.Errorf("connect redis: %w", err)
				}
				spin.Stop()
				prog.done("Connected to Redis")
				cc = rc
			default:
				if cc, err = newCache(false); err != nil {
					return err
				}
			}

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetEngineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
			defer observability.Reset()

			runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, buildinfo.CacheScope()), c.Logger)
			defer runner.Close()

			srv := api.New(runner, c.Logger, api.Config{Addr: addr, Defaults: st})
			printSuccess("Listening on %s", StyleHighlight.Render(addr))
			host := addr
			if strings.HasPrefix(host, ":") {
				host = "localhost" + host
			}
			printNextStep("Try", "curl http://"+host+"/v1/modes")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared plan cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the plan cache")

	return cmd
}
