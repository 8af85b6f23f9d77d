package main

import (
	"fmt"
	"io"
	"os"

	"github.com/robjustinwagner/dectree"
	"github.com/robjustinwagner/dectree/report"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*schemaConfig
	dataInput     string
	tuneInput     string
	output        string
	plotOutput    string
	redisAddr     string
	storeOnRedis  bool
	depthTieBreak bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a training set of data to predict the class feature, and prune it against a tuning set if one is given.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.storeOnRedis = cmd.Flags().Changed("redis-addr")
			ctx := config.Context()
			schema, err := config.schema()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := readSet(ctx, logger(config.verbose), config.dataInput, "training set", schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", trainingSet.Count(), len(schema.Features()), schema.Label().Name())
			t, err := dectree.Grow(trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			reports := config.reportWriter()
			if config.tuneInput != "" {
				tuningSet, err := readSet(ctx, logger(config.verbose), config.tuneInput, "tuning set", schema)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				ps := &dectree.PruningStrategy{DepthTieBreak: config.depthTieBreak, Logf: config.Logf}
				pruned, pr, err := dectree.Prune(trainingSet, tuningSet, t, ps)
				if err != nil {
					fmt.Fprintf(os.Stderr, "pruning the tree: %v\n", err)
					os.Exit(6)
				}
				t = pruned
				config.Logf("%v", t)
				err = report.WritePruningReport(reports, pr)
				if err == nil {
					err = report.WriteAccuracy(reports, "tune", pr.Final, 0)
				}
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(7)
				}
				if config.plotOutput != "" {
					config.Logf("Plotting pruning rounds onto %s...", config.plotOutput)
					err = report.SavePruningPlot(pr, config.plotOutput)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						os.Exit(8)
					}
				}
			}
			if config.storeOnRedis {
				id, err := storeTree(ctx, config.redisAddr, t)
				if err != nil {
					fmt.Fprintf(os.Stderr, "storing the tree: %v\n", err)
					os.Exit(9)
				}
				fmt.Fprintf(reports, "tree stored as %s%s\n", redisTreePrefix, id)
			}
			if config.output != "" || !config.storeOnRedis {
				err = outputTree(config.output, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(10)
				}
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", fmt.Sprintf(inputFlagUsage, "training set"))
	cmd.PersistentFlags().StringVarP(&(config.tuneInput), "tune", "t", "", "path or URL of a tuning set to prune the grown tree against, accepting the same kinds of input as --input (optional)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.plotOutput), "plot", "", "path to a .png or .svg file on which to plot the tuning accuracy of every pruning round")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", defaultRedisAddr, "store the tree on the redis server at this address, printing its redis://<id> reference")
	cmd.PersistentFlags().BoolVar(&(config.depthTieBreak), "depth-tie-break", false, "when pruning, prefer shallower trees on equal tuning accuracy")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	err := gcc.schemaConfig.Validate()
	if err != nil {
		return err
	}
	if gcc.tuneInput == "" && gcc.plotOutput != "" {
		return fmt.Errorf("plot flag requires a tuning set")
	}
	if gcc.tuneInput == "" && gcc.depthTieBreak {
		return fmt.Errorf("depth-tie-break flag requires a tuning set")
	}
	if gcc.tuneInput != "" && gcc.dataInput == gcc.tuneInput {
		return fmt.Errorf("training and tuning sets cannot be read from the same input")
	}
	return nil
}

// reportWriter returns where reports are written: STDOUT unless the tree
// goes there.
func (gcc *growCmdConfig) reportWriter() io.Writer {
	if gcc.output == "" && !gcc.storeOnRedis {
		return os.Stderr
	}
	return os.Stdout
}
