package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/spf13/cobra"

	"avrstore/internal/adapter/repository"
	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/resource"
	"avrstore/internal/seed"
	"avrstore/internal/usecase"
	"avrstore/pkg/config"
	"avrstore/pkg/logger"
)

var (
	seedFile string
	dryRun   bool
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "AVR store catalog tools",
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load categories, artisans and products from a YAML file",
	Long: `Reads a catalog seed file and writes every record through the same
validation the admin API uses. The run stops at the first invalid record;
records written before it are kept.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&seedFile, "file", "f", "seed/catalog.yaml", "seed file to load")
	catalogCmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing")
	catalogCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the run")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	data, err := seed.Parse(f)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Printf("%s: %d categories, %d artisans, %d products\n",
			seedFile, len(data.Categories), len(data.Artisans), len(data.Products))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Configure(cfg.Environment)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, cfg.ClientOptions()...)
	if err != nil {
		return fmt.Errorf("connect firestore: %w", err)
	}
	defer client.Close()

	artisans := usecase.NewResourceUseCase[entity.Artisan, *entity.Artisan](
		resource.Artisans(),
		repository.NewFirestoreDocumentRepository[entity.Artisan, *entity.Artisan](client, resource.Artisans()),
	)
	categories := usecase.NewResourceUseCase[entity.Category, *entity.Category](
		resource.Categories(),
		repository.NewFirestoreDocumentRepository[entity.Category, *entity.Category](client, resource.Categories()),
	)
	products := usecase.NewProductUseCase(repository.NewFirestoreProductRepository(client))

	res, err := seed.Apply(ctx, data, seed.Targets{
		Products:   products,
		Artisans:   artisans,
		Categories: categories,
	})
	fmt.Printf("Wrote %d categories, %d artisans, %d products\n", res.Categories, res.Artisans, res.Products)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
