// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshlib/reserves-engine/internal/cdl"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the cached digital-library catalog",
	Long: `Catalog manages the SQLite snapshot of the controlled digital lending
catalog. The enrich run matches citation titles against this snapshot;
rebuild it from a fresh platform dump whenever the catalog changes.`,
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build [dump.yaml]",
	Short: "Build the catalog snapshot from a platform dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogBuild,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Try a fuzzy title search against the snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogSearch,
}

func init() {
	catalogCmd.PersistentFlags().String("db", "reserves.db", "SQLite snapshot file")

	catalogCmd.AddCommand(catalogBuildCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")

	items, err := cdl.ReadItemsDump(args[0])
	if err != nil {
		return err
	}
	if err := cdl.SaveItems(context.Background(), dbPath, items); err != nil {
		return err
	}

	fmt.Printf("Cached %d catalog items in %s\n", len(items), dbPath)
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	cfg := enrichConfig()

	catalog, err := cdl.LoadCatalog(context.Background(), dbPath, cfg.CDLItemTemplate)
	if err != nil {
		return err
	}

	matches := catalog.Search(args[0])
	if len(matches) == 0 {
		fmt.Println(cdl.NoMatchNote)
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%3d  %s  %s\n", m.Score, m.Item.ID, m.Item.Title)
	}
	fmt.Println(cdl.FormatNote(matches))
	return nil
}
