package main

import (
	"github.com/spf13/cobra"
)

func newIdentifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Identify the meter of a verse",
		Long:  `Identify reads a verse from file, or from stdin when no file is given, and prints its scansion and meter`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, mode, err := opts.newIdentifier(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			v, err := id.Identify(cmd.Context(), text, mode, opts.scheme)
			if err != nil {
				return err
			}
			return writeVerse(cmd.OutOrStdout(), opts.format, v, true)
		},
	}
}

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Syllabify a verse and show its weights without classifying it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _, err := opts.newIdentifier(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			v, err := id.Scan(text, opts.scheme)
			if err != nil {
				return err
			}
			return writeVerse(cmd.OutOrStdout(), opts.format, v, false)
		},
	}
}
