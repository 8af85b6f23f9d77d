package main

import (
	"fmt"
	"os"

	"github.com/robjustinwagner/dectree/report"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*schemaConfig
	treeInput string
	dataInput string
	setName   string
	redisAddr string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the accuracy of a tree against a test data set`,
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
			t, err := loadTree(ctx, config.treeInput, config.redisAddr, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			testingSet, err := readSet(ctx, logger(config.verbose), config.dataInput, config.setName+" set", schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against %s set with %d samples...", config.setName, testingSet.Count())
			score, fallbacks, err := t.Test(testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			err = report.WriteAccuracy(os.Stdout, config.setName, score, fallbacks)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", fmt.Sprintf(inputFlagUsage, "set to test the tree against"))
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "T", "", treeFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.setName), "name", "test", "name of the set on the accuracy report")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", defaultRedisAddr, redisFlagUsage)
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.schemaConfig.Validate()
}
