package main

import (
	"fmt"
	"os"

	"github.com/robjustinwagner/dectree/tree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*schemaConfig
	treeInput string
	redisAddr string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print a tree",
		Long:  `Print a tree one node per line, indenting every node four spaces per level of depth`,
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
			t, err := loadTree(config.Context(), config.treeInput, config.redisAddr, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			internals, leaves := t.Size()
			config.Logf("Tree with %d internal nodes and %d leaves, depth %d", internals, leaves, t.Depth())
			err = tree.WriteText(os.Stdout, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "T", "", treeFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", defaultRedisAddr, redisFlagUsage)
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.schemaConfig.Validate()
}
