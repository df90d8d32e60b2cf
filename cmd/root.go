package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/refresh"
	"github.com/platelunch/ordercore/internal/repositories/postgres"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ordercore",
	Short: "Runs the order acceptance window refresh worker",
	Long:  `ordercore hosts the order acceptance window and daily inventory core for the platelunch ordering platform. The root command runs the cutoff refresh worker, which closes stale acceptance overrides once a store's order cutoff has passed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		worker := refresh.NewWorker(postgres.NewScheduleRepository(pool), cfg.RefreshInterval)
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Worker stopped: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ordercore.yaml)")

	rootCmd.Flags().String("refresh-interval", "1m", "How often to scan schedules for stale overrides")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka order notifications")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("order-topic", "store_order_events", "Topic for owner order notifications")
	rootCmd.Flags().String("timezone", "UTC", "Default store time zone")

	viper.BindPFlags(rootCmd.Flags())

	rootCmd.AddCommand(seedCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ordercore")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
