package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"tracker/internal/service/access"
)

var (
	adminKeyCmd = &cobra.Command{
		Use:   "admin-key",
		Short: "Manage the admin key",
	}

	adminKeyHashCmd = &cobra.Command{
		Use:   "hash",
		Short: "Print the bcrypt hash of a key for ADMIN_KEY_HASH",
		Long: `Reads the admin key from the first line of stdin and prints its bcrypt
hash. Put the hash (never the key) into ADMIN_KEY_HASH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read key from stdin: %w", err)
			}

			hash, err := access.HashKey(strings.TrimRight(line, "\r\n"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
)

func init() {
	adminKeyCmd.AddCommand(adminKeyHashCmd)
}
