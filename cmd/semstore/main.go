// Package main provides the semstore binary entry point.
// Semstore builds a semantic triple graph from document dumps, scores
// documents for convergence, and exports projections for vector indices and
// graph consumers.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semstore/consolidator"
	"github.com/c360studio/semstore/export"
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semstore"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "semstore",
		Short: "Semantic relationship store",
		Long: `Semstore extracts subject-predicate-object relationships from documents,
stores them in an indexed triple graph, scores documents for convergence,
and exports projections for vector indices and graph consumers.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(ingestCmd(&configPath, &logLevel))
	cmd.AddCommand(searchCmd(&configPath, &logLevel))
	cmd.AddCommand(statsCmd(&configPath, &logLevel))
	cmd.AddCommand(exportCmd(&configPath, &logLevel))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func ingestCmd(configPath, logLevel *string) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "ingest <documents.json>",
		Short: "Extract and store relationships from a document dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			app, err := newApp(ctx, *configPath, *logLevel)
			if err != nil {
				return err
			}
			defer app.close()

			docs, err := loadDocuments(args[0])
			if err != nil {
				return err
			}
			if err := app.restore(ctx); err != nil {
				return err
			}

			size := batchSize
			if size <= 0 {
				size = app.cfg.Store.BatchSize
			}
			res := app.svc.ExtractAndStoreBatch(ctx, docs, consolidator.BatchOptions{
				BatchSize: size,
				OnProgress: func(processed, total int) {
					app.logger.Info("ingest progress", "processed", processed, "total", total)
				},
			})

			for _, f := range res.Failures {
				app.logger.Warn("document failed", "document", f.DocumentID, "error", f.Message)
			}
			if res.Cancelled {
				app.logger.Warn("ingest cancelled before completion")
			}
			if err := app.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Ingested %d documents (%d failed), %d triples stored\n",
				res.Successful, res.Failed, app.store.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Documents per batch (0 = config default)")
	return cmd
}

func searchCmd(configPath, logLevel *string) *cobra.Command {
	var subject, predicate, object string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Query the graph by partial triple pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, *configPath, *logLevel)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.restore(ctx); err != nil {
				return err
			}

			triples := app.svc.Search(graph.Pattern{
				Subject:   subject,
				Predicate: predicate,
				Object:    object,
			})
			enc := json.NewEncoder(os.Stdout)
			for _, t := range triples {
				if err := enc.Encode(t); err != nil {
					return err
				}
			}
			app.logger.Info("search complete", "matches", len(triples))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Exact subject value")
	cmd.Flags().StringVar(&predicate, "predicate", "", "Exact predicate value")
	cmd.Flags().StringVar(&object, "object", "", "Exact object value")
	return cmd
}

func statsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph statistics and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, *configPath, *logLevel)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.restore(ctx); err != nil {
				return err
			}

			out := struct {
				Statistics graph.Statistics       `json:"statistics"`
				Insights   []consolidator.Insight `json:"insights,omitempty"`
			}{
				Statistics: app.svc.Statistics(),
				Insights:   app.svc.GenerateInsights(graph.Pattern{}),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var format, docsPath, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as turtle, ntriples, edges, or points",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, *configPath, *logLevel)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.restore(ctx); err != nil {
				return err
			}

			var out string
			switch export.Format(format) {
			case export.FormatPoints:
				if docsPath == "" {
					return fmt.Errorf("point export requires --documents")
				}
				docs, err := loadDocuments(docsPath)
				if err != nil {
					return err
				}
				if err := app.withEmbedder(ctx); err != nil {
					app.logger.Warn("embedder unavailable, exporting structural points", "error", err)
				}
				points := app.svc.ExportPoints(ctx, docs)
				data, err := json.MarshalIndent(points, "", "  ")
				if err != nil {
					return err
				}
				out = string(data)

			default:
				out, err = app.svc.ExportFor(export.Format(format))
				if err != nil {
					return err
				}
			}

			if outPath == "" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			app.logger.Info("export written", "path", outPath, "format", format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ntriples", "Export format (turtle, ntriples, edges, points)")
	cmd.Flags().StringVar(&docsPath, "documents", "", "Document dump for point export")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

// loadDocuments reads a JSON array of documents from disk.
func loadDocuments(path string) ([]*source.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	var docs []*source.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse documents: %w", err)
	}
	return docs, nil
}
