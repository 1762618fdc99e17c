package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/evently-app/server/internal/connect"
	"github.com/evently-app/server/internal/models"
	"github.com/evently-app/server/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample events",
	Long:  `Replace the events, attendance, and favorites collections with sample fixtures.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)

	mongoClient, err := connect.MongoDBConnect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := connect.MongoDBDisconnect(mongoClient); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	repo := models.MongodbNewRepo(mongoClient, cfg.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return seed.Seed(ctx, repo, logger)
}
