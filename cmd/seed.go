package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platelunch/ordercore/internal/factories"
	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo store schedules and today's daily menus",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		schedules := postgres.NewScheduleRepository(pool)
		menus := postgres.NewDailyMenuRepository(pool)

		storeFactory := &factories.StoreFactory{}
		menuFactory := &factories.DailyMenuFactory{}
		today := models.FormatMenuDate(time.Now())

		bar := progressbar.Default(int64(cfg.SeedStores), "seeding stores")
		for i := 0; i < cfg.SeedStores; i++ {
			schedule := storeFactory.CreateSchedule(cfg)
			if err := schedules.Upsert(ctx, schedule); err != nil {
				fmt.Fprintf(os.Stderr, "Error seeding schedule: %v\n", err)
				os.Exit(1)
			}

			menu := menuFactory.CreateDailyMenu(schedule.StoreID, today, cfg.SeedItemsPerMenu, cfg.SeedMaxQuantity)
			if err := menus.Publish(ctx, menu); err != nil {
				fmt.Fprintf(os.Stderr, "Error seeding daily menu: %v\n", err)
				os.Exit(1)
			}
			bar.Add(1)
		}

		fmt.Printf("Seeded %d stores with menus for %s\n", cfg.SeedStores, today)
	},
}
