// Package main provides the mapgraph CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapgraph/dataset"
	"github.com/katalvlaran/mapgraph/mapper"
	"github.com/katalvlaran/mapgraph/render"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mapgraph",
		Short: "mapgraph - topological mapper graphs over tabular features",
		Long: `mapgraph builds a topological "mapper graph" over a tabular dataset:
features are standardized, projected onto a 2-D lens, covered with
overlapping rectangles, clustered per cover element, and stitched into a
graph whose nodes are clusters and whose edges are shared records.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mapgraph v%s (%s)\n", version, commit)
		},
	})

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the mapper graph and write the HTML page",
		RunE:  runBuild,
	}
	addPipelineFlags(buildCmd)
	buildCmd.Flags().String("out", "mapper.html", "Output HTML path")
	buildCmd.Flags().String("title", "Big Ten Fight Song Topology", "Page title")
	rootCmd.AddCommand(buildCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Build the mapper graph and print its statistics",
		RunE:  runStats,
	}
	addPipelineFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)

	return rootCmd
}

// addPipelineFlags registers the shared data and tuning flags; defaults
// mirror mapper.DefaultParams.
func addPipelineFlags(cmd *cobra.Command) {
	def := mapper.DefaultParams()
	cmd.Flags().String("data", "fight-songs.csv", "Raw fight-song CSV path")
	cmd.Flags().String("rates", "", "YAML win-rate config path (empty: built-in table)")
	cmd.Flags().Int("resolution", def.Cover.Resolution, "Cover intervals per lens dimension")
	cmd.Flags().Float64("overlap", def.Cover.OverlapFraction, "Cover overlap fraction in [0,1)")
	cmd.Flags().Float64("eps", def.Cluster.Eps, "Clustering neighborhood radius")
	cmd.Flags().Int("min-samples", def.Cluster.MinSamples, "Clustering density threshold")
	cmd.Flags().Float64("neighborhood", def.Lens.NeighborhoodSize, "Lens neighborhood size (perplexity)")
	cmd.Flags().Int64("seed", def.Lens.Seed, "Lens projection seed (0: package default)")
	cmd.Flags().Int("max-iter", def.Lens.MaxIter, "Lens gradient-descent iterations")
	cmd.Flags().String("color-func", def.Color.String(), "Node color statistic: mean, max or min")
}

// paramsFromFlags assembles the pipeline tuning from the parsed flags.
func paramsFromFlags(cmd *cobra.Command) (mapper.Params, error) {
	p := mapper.DefaultParams()

	var err error
	if p.Cover.Resolution, err = cmd.Flags().GetInt("resolution"); err != nil {
		return p, err
	}
	if p.Cover.OverlapFraction, err = cmd.Flags().GetFloat64("overlap"); err != nil {
		return p, err
	}
	if p.Cluster.Eps, err = cmd.Flags().GetFloat64("eps"); err != nil {
		return p, err
	}
	if p.Cluster.MinSamples, err = cmd.Flags().GetInt("min-samples"); err != nil {
		return p, err
	}
	if p.Lens.NeighborhoodSize, err = cmd.Flags().GetFloat64("neighborhood"); err != nil {
		return p, err
	}
	if p.Lens.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
		return p, err
	}
	if p.Lens.MaxIter, err = cmd.Flags().GetInt("max-iter"); err != nil {
		return p, err
	}
	name, err := cmd.Flags().GetString("color-func")
	if err != nil {
		return p, err
	}
	if p.Color, err = mapper.ParseColorFunc(name); err != nil {
		return p, err
	}
	return p, nil
}

// runPipeline loads the dataset and builds the graph, logging stage timings.
func runPipeline(cmd *cobra.Command) (*mapper.Graph, *dataset.Table, error) {
	dataPath, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, nil, err
	}
	ratesPath, err := cmd.Flags().GetString("rates")
	if err != nil {
		return nil, nil, err
	}
	params, err := paramsFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := dataset.LoadConfigOrDefault(ratesPath)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	table, err := dataset.LoadFile(dataPath, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("dataset loaded", "records", len(table.Records), "took", time.Since(start))

	start = time.Now()
	graph, err := mapper.Map(table.FeatureMatrix(), table.Colors(), params)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("graph built",
		"nodes", graph.NumNodes(), "edges", graph.NumEdges(), "took", time.Since(start))

	return graph, table, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	graph, table, err := runPipeline(cmd)
	if err != nil {
		return err
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return err
	}
	params, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	o := render.DefaultOptions()
	o.Title = title
	o.Meta = map[string]string{
		"Color function": params.Color.String(),
		"Methodology":    "Mapper on the 5-dimensional fight-song feature space",
	}
	if err := render.WriteFile(outPath, graph, table.Tooltips(), o); err != nil {
		return err
	}
	logger.Info("page written", "path", outPath)

	stats := graph.Stats()
	fmt.Printf("Number of nodes: %d\n", stats.NumNodes)
	fmt.Printf("Number of edges: %d\n", stats.NumEdges)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	graph, table, err := runPipeline(cmd)
	if err != nil {
		return err
	}

	stats := graph.Stats()
	fmt.Printf("Number of nodes: %d\n", stats.NumNodes)
	fmt.Printf("Number of edges: %d\n", stats.NumEdges)
	fmt.Printf("Connected components: %d\n", stats.NumComponents)
	fmt.Printf("Max degree: %d\n", stats.MaxDegree)
	fmt.Printf("Covered records: %d of %d\n", stats.CoveredRecords, len(table.Records))
	return nil
}
