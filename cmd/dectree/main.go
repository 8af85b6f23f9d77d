package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose    bool
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dectree",
		Short: "dectree is a tool to grow binary decision trees",
		Long:  `A tool to grow binary classification trees from categorical data, prune them against a tuning set, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress to STDERR")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config.cancelOnInterrupt()
	}
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		testCmd(config),
		gainCmd(config),
		treeCmd(config),
		predictCmd(config),
		splitCmd(config),
		setCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	logger(rcc.verbose).Logf(format, a...)
}

func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

func (rcc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rcc.setContextAndCancelFunc()
	return rcc.cancelFunc
}

func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
	}
}

// cancelOnInterrupt cancels the context of backend operations on SIGINT.
func (rcc *rootCmdConfig) cancelOnInterrupt() {
	cancel := rcc.ContextCancelFunc()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		rcc.Logf("Interrupted, cancelling pending operations...")
		cancel()
	}()
}
