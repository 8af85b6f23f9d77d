package main

import (
	"fmt"
	"os"

	"github.com/robjustinwagner/dectree"
	"github.com/robjustinwagner/dectree/report"
	"github.com/spf13/cobra"
)

type gainCmdConfig struct {
	*schemaConfig
	dataInput string
}

func gainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "gain",
		Short: "Report the information gain of every feature",
		Long:  `Report the information gain every feature provides to predict the class feature on a training set, floored to 3 decimal places`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			schema, err := config.schema()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := readSet(config.Context(), logger(config.verbose), config.dataInput, "training set", schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			gains, err := dectree.GainReport(trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "computing information gains: %v\n", err)
				os.Exit(4)
			}
			err = report.WriteGainReport(os.Stdout, gains)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", fmt.Sprintf(inputFlagUsage, "training set"))
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	return cmd
}
