package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*schemaConfig
	setInput         string
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, e.g. to obtain a tuning or test set from a training set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if !cmd.Flags().Changed("seed") {
				config.seed = time.Now().UnixNano()
			}
			ctx := config.Context()
			schema, err := config.schema()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			input, err := readSet(ctx, logger(config.verbose), config.setInput, "input set", schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Splitting samples with a probability of %d%% and seed %d...", config.splitProbability, config.seed)
			kept, split, err := dataset.Split(input, float64(config.splitProbability)/100.0, rand.New(rand.NewSource(config.seed)))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			err = writeSet(ctx, logger(config.verbose), config.splitOutput, "split set", split)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			err = writeSet(ctx, logger(config.verbose), config.setOutput, "output set", kept)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", fmt.Sprintf(inputFlagUsage, "set to split"))
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the samples not split (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the split samples (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "probability", "p", 20, "probability as an integer percentage of a sample being split")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random split (defaults to the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split flag was not set")
	}
	if scc.splitProbability < 0 || scc.splitProbability > 100 {
		return fmt.Errorf("probability must be between 0 and 100, got %d", scc.splitProbability)
	}
	if scc.setInput == scc.splitOutput || (scc.setInput != "" && scc.setInput == scc.setOutput) {
		return fmt.Errorf("input set cannot be overwritten")
	}
	return scc.schemaConfig.Validate()
}
