package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-javagen/pkg/generator"
	"github.com/goliatone/go-javagen/pkg/schema"
	"github.com/goliatone/go-javagen/pkg/sink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "javagen",
		Short:         "Generate Java sources from message-file descriptors",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

type generateFlags struct {
	schemaPath string
	outDir     string
	parameter  string
	openSource bool
	force      bool
	verbose    bool
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the generation plan for one descriptor file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.schemaPath, "schema", "", "descriptor document (YAML or JSON)")
	cmd.Flags().StringVar(&flags.outDir, "out", "gen", "output directory")
	cmd.Flags().StringVar(&flags.parameter, "param", "", "generator options, e.g. \"immutable,annotate_code\"")
	cmd.Flags().BoolVar(&flags.openSource, "open-source", true, "target the open-source runtime")
	cmd.Flags().BoolVar(&flags.force, "force", false, "write into a non-empty output directory without asking")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	log := logrus.New()
	if flags.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	file, err := schema.Load(cmd.Context(), schema.SourceFromFile(flags.schemaPath))
	if err != nil {
		return err
	}

	if !flags.force {
		proceed, err := confirmNonEmptyDir(flags.outDir)
		if err != nil {
			return err
		}
		if !proceed {
			return errors.New("aborted")
		}
	}

	gen := generator.New(
		generator.WithOpenSourceRuntime(flags.openSource),
		generator.WithLogger(log),
	)

	outcome, err := gen.Generate(cmd.Context(), generator.Request{
		File:      file,
		Parameter: flags.parameter,
		Sink:      sink.Dir(flags.outDir),
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"source": file.Name,
		"out":    flags.outDir,
	}).Info("generation complete")

	for _, path := range outcome.Files {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// confirmNonEmptyDir prompts before writing into a directory that already
// has contents. A missing directory needs no confirmation.
func confirmNonEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) == 0 {
		return true, nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("output directory %s is not empty, continue?", dir),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
