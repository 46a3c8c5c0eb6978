package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"strategycoach/internal/cli"
	"strategycoach/internal/config"
	"strategycoach/internal/errorx"
	"strategycoach/internal/handler"
	"strategycoach/internal/svc"
)

var configFile = flag.String("f", "etc/strategycoach.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)

	server := rest.MustNewServer(cfg.RestConf)
	defer server.Stop()

	cli.LogConfigSummary(cfg)

	ctx := svc.NewServiceContext(*cfg)
	defer ctx.Close()

	httpx.SetErrorHandlerCtx(errorx.Handler)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
