package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/internal/migration"
	"github.com/smallbiznis/catalog/internal/observability"
	"github.com/smallbiznis/catalog/internal/server"
	"github.com/smallbiznis/catalog/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
