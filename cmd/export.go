package cmd

import (
	"context"
	"log"
	"path/filepath"

	"github.com/anoixa/label-bed/config"
	"github.com/anoixa/label-bed/database/dbcore"
	svcExport "github.com/anoixa/label-bed/internal/services/export"
	"github.com/spf13/cobra"
)

var (
	exportOutputDir          string
	exportIncludeUnannotated bool
)

// exportCmd 离线导出一个项目的数据集
// 不经过 HTTP 层，直接以批处理方式读取整个项目图
var exportCmd = &cobra.Command{
	Use:   "export <project-uuid>",
	Short: "Export a project as a YOLO-style dataset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
		cfg := config.Get()

		identifier := args[0]

		outputDir := exportOutputDir
		if outputDir == "" {
			outputDir = filepath.Join(cfg.ExportDir, identifier)
		}

		deps := buildDependencies(cfg)
		defer func() {
			if err := dbcore.CloseDB(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}()

		opts := svcExport.Options{
			ExportDir:          outputDir,
			IncludeUnannotated: exportIncludeUnannotated,
		}

		// CLI 导出不做所有权过滤
		result, err := deps.Exporter.Export(context.Background(), identifier, 0, opts)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}

		for _, fe := range result.FileErrors {
			log.Printf("Export warning: %s: %s", fe.Path, fe.Err)
		}
		log.Printf("Exported %d train / %d val / %d test images, %d classes",
			result.TrainCount, result.ValCount, result.TestCount, result.ClassCount)
		log.Printf("Manifest written to %s", result.ManifestPath)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "output directory (default: <export_dir>/<project-uuid>)")
	exportCmd.Flags().BoolVar(&exportIncludeUnannotated, "include-unannotated", false, "include images without annotations in the split lists")
	rootCmd.AddCommand(exportCmd)
}
