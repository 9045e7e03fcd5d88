// Package main runs the workout MCP server over stdio for local assistants.
// The backend mounts the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"

	"github.com/2beens/undergroundgym/internal/catalog"
	"github.com/2beens/undergroundgym/internal/config"
	"github.com/2beens/undergroundgym/internal/db"
	workoutmcp "github.com/2beens/undergroundgym/internal/mcp"
	"github.com/2beens/undergroundgym/internal/sessions"
	"github.com/2beens/undergroundgym/internal/splits"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	server := workoutmcp.NewServer(
		dbPool,
		catalog.NewRepo(dbPool),
		splits.NewRepo(dbPool),
		sessions.NewRepo(dbPool),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
