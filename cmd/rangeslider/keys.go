// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"cogentcore.org/rangeslider/keymap"
)

func newKeysCommand() *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the key bindings of the slider as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := keymap.DefaultMap().MarkdownDoc()
			if asHTML {
				doc = keymap.DefaultMap().HTMLDoc()
			}
			_, err := io.WriteString(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the table as HTML")
	return cmd
}
