package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julianknutsen/oddsight/internal/digest"
)

func newDigestCmd(stdout, _ io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [text|-]",
		Short: "Print a 512-bit hex digest to analyze",
		Long: `Hash text (or stdin when the argument is "-" or omitted) and print the
128-character hex digest, ready for 'oddsight analyze'.

A text argument is hashed as given; stdin is hashed byte for byte.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, stdout, args)
		},
	}
	cmd.Flags().StringP("algo", "a", "", "Algorithm: sha512, sha3-512, blake2b-512 (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("algo", completeAlgos)
	return cmd
}

func runDigest(cmd *cobra.Command, stdout io.Writer, args []string) error {
	algo, _ := cmd.Flags().GetString("algo")
	if algo == "" {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		algo = cfg.Digest
	}

	var (
		sum string
		err error
	)
	if len(args) > 0 && args[0] != "-" {
		sum, err = digest.Sum(algo, []byte(args[0]))
	} else {
		sum, err = digest.SumReader(algo, cmd.InOrStdin())
	}
	if err != nil {
		return hintWrap(err)
	}
	fmt.Fprintln(stdout, strings.ToLower(sum))
	return nil
}
