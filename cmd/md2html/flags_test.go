package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		want           convertFlags
		wantPositional []string
	}{
		{
			name:           "defaults",
			args:           []string{"doc.md"},
			want:           convertFlags{},
			wantPositional: []string{"doc.md"},
		},
		{
			name: "short flags",
			args: []string{"-i", "docs", "-o", "page", "-c", "site", "-j", "2", "-w", "3", "-q"},
			want: convertFlags{
				common:  commonFlags{config: "site", quiet: true},
				render:  renderFlags{threads: 2},
				input:   "docs",
				output:  "page",
				workers: 3,
			},
		},
		{
			name: "long flags",
			args: []string{
				"--input", "a.md", "--output", "b.html", "--threads", "8", "--workers", "1",
				"--style", "plain", "--code-style", "monokai", "--assets-dir", "assets",
				"--no-frontmatter", "--rewrite-links", "--verbose", "--no-style", "--config", "c.toml",
			},
			want: convertFlags{
				common: commonFlags{config: "c.toml", verbose: true},
				render: renderFlags{
					threads:       8,
					style:         "plain",
					noStyle:       true,
					codeStyle:     "monokai",
					assetsDir:     "assets",
					noFrontmatter: true,
				},
				input:        "a.md",
				output:       "b.html",
				workers:      1,
				rewriteLinks: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, positional, err := parseConvertFlags(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseConvertFlags() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, *got, cmp.AllowUnexported(convertFlags{}, commonFlags{}, renderFlags{})); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPositional, positional, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseServeFlags(t *testing.T) {
	t.Parallel()

	got, positional, err := parseServeFlags([]string{"site", "--addr", ":9000", "--style", "plain"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseServeFlags() error = %v", err)
	}
	if got.addr != ":9000" || got.render.style != "plain" {
		t.Errorf("flags = %+v", *got)
	}
	if len(positional) != 1 || positional[0] != "site" {
		t.Errorf("positional = %v", positional)
	}

	got, _, err = parseServeFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if got.addr != defaultAddr {
		t.Errorf("default addr = %q, want %q", got.addr, defaultAddr)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	if _, _, err := parseConvertFlags([]string{"--help"}, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("--help error = %v, want ErrHelp", err)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("Usage: md2html [convert]")) {
		t.Errorf("--help did not print usage: %q", stderr.String())
	}

	if _, _, err := parseConvertFlags([]string{"--threads", "many"}, &bytes.Buffer{}); err == nil {
		t.Error("non-numeric --threads accepted")
	}
	if _, _, err := parseServeFlags([]string{"--bogus"}, &bytes.Buffer{}); err == nil {
		t.Error("unknown serve flag accepted")
	}
}
