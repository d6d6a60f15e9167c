package main

import (
	"go.uber.org/zap"

	"github.com/fsdevblog/bookmarks/internal/app"
	"github.com/fsdevblog/bookmarks/internal/bmeta"
	"github.com/fsdevblog/bookmarks/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	bmeta.New(buildVersion, buildDate, buildCommit).Log(a.Logger)
	a.Logger.Info("Starting server",
		zap.String("address", appConf.ServerAddress),
		zap.String("routePrefix", appConf.RoutePrefix),
	)
	if err := a.Run(); err != nil {
		a.Logger.Fatal("server stopped with error", zap.Error(err))
	}
}
