package main

import (
	"fmt"
	"os"

	"github.com/robjustinwagner/dectree/dataset/inputsample"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*schemaConfig
	treeInput    string
	redisAddr    string
	acceptUnseen bool
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{schemaConfig: &schemaConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label of a sample answering questions",
		Long:  `Use the loaded tree to predict the class feature value for a sample answering a reduced set of questions about its features`,
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
			sample := inputsample.New(os.Stdin, schema, stdoutFeatureValueRequester{}, config.acceptUnseen)
			prediction, err := t.Predict(sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted %s is %v\n", schema.Label().Name(), prediction)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "T", "", treeFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", defaultRedisAddr, redisFlagUsage)
	cmd.PersistentFlags().BoolVar(&(config.acceptUnseen), "accept-unseen", false, "accept values outside of a feature's domain, predicting the majority label of the node asking for it")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return pcc.schemaConfig.Validate()
}

func (stdoutFeatureValueRequester) RequestValueFor(f *feature.Feature) error {
	fmt.Printf("Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.Values())
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	fmt.Printf("%q is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.Values())
	return nil
}
