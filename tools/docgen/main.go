// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen renders the markdown under docs/commands into the shipped docs for
// the example binaries:
//   - docs/man/share/man1/tote-<cmd>.1 (md2man over the full markdown)
//   - docs/tldr/tote-<cmd>.md (short description plus quick examples)

func main() {
	root := flag.String("root", ".", "repo root (default current dir)")
	force := flag.Bool("force", false, "rewrite outputs even when unchanged")
	flag.Parse()

	commandsDir := filepath.Join(*root, "docs", "commands")
	manDir := filepath.Join(*root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(*root, "docs", "tldr")

	for _, dir := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("failed to create %s: %v", dir, err)
		}
	}

	pages, err := filepath.Glob(filepath.Join(commandsDir, "*.md"))
	if err != nil {
		fatalf("failed to scan %s: %v", commandsDir, err)
	}
	if len(pages) == 0 {
		fatalf("no command markdown under %s", commandsDir)
	}

	for _, in := range pages {
		cmd := strings.TrimSuffix(filepath.Base(in), ".md")
		raw, err := os.ReadFile(in)
		if err != nil {
			fatalf("failed to read %s: %v", in, err)
		}

		man := filepath.Join(manDir, "tote-"+cmd+".1")
		if err := emit(man, md2man.Render(raw), *force); err != nil {
			fatalf("failed to write %s: %v", man, err)
		}

		tldr := filepath.Join(tldrDir, "tote-"+cmd+".md")
		if err := emit(tldr, []byte(buildTLDR(cmd, string(raw))), *force); err != nil {
			fatalf("failed to write %s: %v", tldr, err)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// emit writes content to path, leaving an already up-to-date file untouched
// so repeated runs don't churn mtimes.
func emit(path string, content []byte, force bool) error {
	if !force {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, content, 0o644)
}

var (
	sectionRe = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	fencedRe  = regexp.MustCompile("(?s)```[a-z]*\n(.*?)```")
)

// section returns the body of the "## <title>" section, or "".
func section(md, title string) string {
	headers := sectionRe.FindAllStringSubmatchIndex(md, -1)
	for i, h := range headers {
		if !strings.EqualFold(strings.TrimSpace(md[h[2]:h[3]]), title) {
			continue
		}
		end := len(md)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		return md[h[1]:end]
	}
	return ""
}

// shortDesc returns the first paragraph of the Short description section,
// flattened to a single line.
func shortDesc(md string) string {
	for _, para := range strings.Split(section(md, "Short description"), "\n\n") {
		if s := strings.Join(strings.Fields(para), " "); s != "" {
			return s
		}
	}
	return ""
}

type example struct {
	desc string
	cmd  string
}

// quickExamples parses the first fenced block of the Quick examples section,
// pairing each "# description" comment with the command line that follows.
func quickExamples(md string) []example {
	m := fencedRe.FindStringSubmatch(section(md, "Quick examples"))
	if m == nil {
		return nil
	}

	var (
		exs  []example
		desc string
	)
	for _, ln := range strings.Split(m[1], "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{desc: desc, cmd: ln})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(cmd, md string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# tote-%s\n\n", cmd)

	short := shortDesc(md)
	if short == "" {
		short = "tote-" + cmd
	}
	fmt.Fprintf(&b, "> %s\n", short)
	b.WriteString("> More information: https://github.com/thepacketgeek/tote.\n\n")

	exs := quickExamples(md)
	if len(exs) == 0 {
		exs = []example{{desc: "Show help for the command", cmd: "tote-" + cmd + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s:\n\n", strings.TrimSuffix(ex.desc, ":"))
		fmt.Fprintf(&b, "`%s`\n", strings.Join(strings.Fields(ex.cmd), " "))
	}
	return b.String()
}
