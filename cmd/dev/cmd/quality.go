package cmd

import (
	"fmt"

	"github.com/gophertribe/devtool/test"
	"github.com/spf13/cobra"
)

// QualityCmds returns the test, lint and integration-test commands.
// Integration tests drive a real IIS2DLPC and need a bus on the host.
func QualityCmds() []*cobra.Command {
	tasks := []struct {
		use, short, what string
		run              func() error
	}{
		{"test", "Run unit tests", "tests", test.Test},
		{"lint", "Run linting", "linting", test.Lint},
		{"integration-test", "Run hardware integration tests", "integration testing", test.Integ},
	}
	cmds := make([]*cobra.Command, 0, len(tasks))
	for _, t := range tasks {
		cmds = append(cmds, &cobra.Command{
			Use:   t.use,
			Short: t.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := t.run(); err != nil {
					return fmt.Errorf("failed to run %s: %w", t.what, err)
				}
				return nil
			},
		})
	}
	return cmds
}
