package cli

import (
	"context"
	"errors"
	"flag"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathcost/internal/cache"
	"github.com/katalvlaran/pathcost/internal/ctxlog"
	"github.com/katalvlaran/pathcost/internal/server"
)

func runServe(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "serve", "")
	addr := fs.String("addr", e.cfg.HTTPAddr, "Listen address.")
	redisAddr := fs.String("redis", e.cfg.RedisAddr, "Redis address for the result cache; empty disables caching.")
	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return usageError("serve: unexpected arguments %v", fs.Args())
	}

	logger := ctxlog.FromContext(ctx)
	if e.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	var c *cache.Cache
	if *redisAddr != "" {
		var err error
		if c, err = cache.Dial(ctx, *redisAddr, e.cfg.CacheTTL); err != nil {
			return err
		}
		defer c.Close()
		logger.Info("result cache enabled", slog.String("redis", *redisAddr), slog.Duration("ttl", e.cfg.CacheTTL))
	}

	srv := server.New(server.Options{
		Logger:    logger,
		Cache:     c,
		RateLimit: e.cfg.RateLimit,
		RateBurst: e.cfg.RateBurst,
		MaxNodes:  e.cfg.MaxNodes,
	})

	return srv.Run(ctx, *addr)
}
