package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dhabedank/prd-analyzer/cmd"
	"github.com/dhabedank/prd-analyzer/internal/version"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var buildVersion = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "prd-analyzer",
		Short:   "Analyze PRDs into summaries, user flows, diagrams, and wireframes",
		Version: buildVersion,
	}

	klog.InitFlags(nil)
	defer klog.Flush()
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(cmd.AnalyzeCmd)
	rootCmd.AddCommand(cmd.WireframeCmd)
	rootCmd.AddCommand(cmd.SetupCmd)

	if version.IsFirstRun() {
		version.PrintFirstRunNotice()
	}
	version.PrintUpdateNotice(version.CheckForUpdate(buildVersion))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
