package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
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
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees",
		Long:  `A tool to grow decision trees from categorical data with the ID3 algorithm, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		config.stop()
	}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "log progress to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

// stop cancels the context and stops relaying interrupts to it
func (rcc *rootCmdConfig) stop() {
	if rcc.cancelFunc != nil {
		rcc.cancelFunc()
	}
}

// the context is cancelled on an interrupt
func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
}
