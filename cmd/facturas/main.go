package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/jesus-or/facturas/internal/config"
	"github.com/jesus-or/facturas/internal/server"
	"github.com/jesus-or/facturas/pkg/db"
	"github.com/jesus-or/facturas/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
