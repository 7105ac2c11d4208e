// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownDoc generates a markdown table of all the key mappings
func (km Map) MarkdownDoc() string {
	var b strings.Builder

	b.WriteString("| Function   | Chords |\n")
	b.WriteString("| ---------- | ------ |\n")

	for kf := MoveUp; kf < FunctionsN; kf++ {
		chs := km.ChordsFor(kf)
		strs := make([]string, len(chs))
		for i, ch := range chs {
			strs[i] = "`" + string(ch) + "`"
		}
		b.WriteString("| " + kf.String() + strings.Repeat(" ", max(0, 10-len(kf.String()))) + " | ")
		b.WriteString(strings.Join(strs, ", "))
		b.WriteString(" |\n")
	}
	return b.String()
}

// HTMLDoc returns [Map.MarkdownDoc] rendered as HTML.
func (km Map) HTMLDoc() string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(km.MarkdownDoc()), p, r))
}
