package cmd

import (
	"log"

	"github.com/anoixa/label-bed/config"
	"github.com/anoixa/label-bed/database/dbcore"
	"github.com/spf13/cobra"
)

// migrateCmd 手动执行数据库迁移
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migration and exit",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()

		db := dbcore.GetDBInstance()
		if err := dbcore.AutoMigrateDB(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if err := dbcore.CloseDB(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
