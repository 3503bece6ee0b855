package cmd

import (
	"log"
	"os"

	"github.com/anoixa/label-bed/api/core"
	"github.com/anoixa/label-bed/config"
	"github.com/anoixa/label-bed/database/dbcore"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start API server",
	Run: func(cmd *cobra.Command, args []string) {
		RunServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer() {
	config.InitConfig()
	cfg := config.Get()

	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	deps := buildDependencies(cfg)
	defer func() {
		if err := dbcore.CloseDB(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	core.StartServer(deps)
}
