package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*schemaConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Convert sets of data",
		Long:  `Read a set of data and dump it onto another kind of storage, checking every sample against the metadata`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
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
			err = writeSet(ctx, logger(config.verbose), config.setOutput, "output set", input)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", fmt.Sprintf(inputFlagUsage, "set to convert"))
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the output set (defaults to STDOUT in CSV)")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput != "" && scc.setInput == scc.setOutput {
		return fmt.Errorf("input and output sets cannot be the same")
	}
	return scc.schemaConfig.Validate()
}
