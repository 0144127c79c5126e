package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// docsCmd writes the Markdown command reference
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Write Markdown documentation for every command",
	Args:   cobra.NoArgs,
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := makeDocs(dir); err != nil {
			stderr.Fatalln(err)
		}
	},
}

func init() {
	docsCmd.Flags().String("dir", "./docs", "output directory")
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	metas := docMetas(RootCmd)
	prepend := func(filename string) string {
		return filePrepender(metas, filename)
	}
	return doc.GenMarkdownTreeCustom(RootCmd, dir, prepend, linkHandler)
}

// docMetas maps the base Markdown file name of every command to its nav position
func docMetas(rootCmd *cobra.Command) map[string]meta {
	metas := map[string]meta{
		docBase(rootCmd): {docType: root, title: rootCmd.Name()},
	}

	for i, c := range visible(rootCmd) {
		m := meta{docType: child, title: c.Name(), navOrder: i, parent: rootCmd.Name()}
		if len(visible(c)) > 0 {
			m.docType = childParent
		}
		metas[docBase(c)] = m

		for j, gc := range visible(c) {
			metas[docBase(gc)] = meta{
				docType:     grandchild,
				title:       gc.Name(),
				navOrder:    j,
				parent:      c.Name(),
				grandParent: rootCmd.Name(),
			}
		}
	}
	return metas
}

// visible is the subcommands that get a doc page
func visible(c *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, sub := range c.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			cmds = append(cmds, sub)
		}
	}
	return cmds
}

// docBase is the file name, without extension, cobra/doc gives c's page
func docBase(c *cobra.Command) string {
	return strings.ReplaceAll(c.CommandPath(), " ", "_")
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(metas map[string]meta, filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metas[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentPage, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildPage, m.title, m.parent, m.grandParent, m.navOrder)
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == docBase(RootCmd) {
		return "/"
	}
	return base
}
