package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oopcheatsheet/internal/service"
)

// newRootCmd builds the command tree around cs.
//
//	cheatsheet                       # every section
//	cheatsheet -s polymorphism       # one section
//	cheatsheet -s objects -s static  # several, in the given order
//	cheatsheet sections              # list section names
func newRootCmd(cs service.Cheatsheet) *cobra.Command {
	var sections []string

	rootCmd := &cobra.Command{
		Use:           "cheatsheet",
		Short:         "Prints a walkthrough of object-oriented concepts expressed in Go",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sections) == 0 {
				return cs.Run(cmd.Context(), cmd.OutOrStdout())
			}
			return cs.RunSections(cmd.Context(), cmd.OutOrStdout(), sections...)
		},
	}
	rootCmd.Flags().StringArrayVarP(&sections, "section", "s", nil, "run only the named section (repeatable)")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "Lists the available section names in execution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range cs.Sections() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(sectionsCmd)

	return rootCmd
}
