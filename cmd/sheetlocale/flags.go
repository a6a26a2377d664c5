package main

import (
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/sheetlocale/internal/config"
)

// bindSheetFlags registers the flags that control fetching and transforming.
func bindSheetFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.Sheet.GID, "gid", cfg.Sheet.GID, "sheet gid to export (overrides gid found in URL)")
	fs.DurationVar(&cfg.Sheet.Timeout, "timeout", cfg.Sheet.Timeout, "HTTP timeout")
	fs.Int64Var(&cfg.Sheet.MaxSize, "max-size", cfg.Sheet.MaxSize, "maximum CSV size in bytes")
	fs.StringVar(&cfg.Sheet.CredentialsFile, "credentials", cfg.Sheet.CredentialsFile, "Google service account JSON for private sheets")

	fs.StringVar(&cfg.Locale.KeyColumn, "key-col", cfg.Locale.KeyColumn, "header name of the key column")
	fs.StringVar(&cfg.Locale.Format, "format", cfg.Locale.Format, "tree format: nested or flat")
	fs.StringVar(&cfg.Locale.Separator, "sep", cfg.Locale.Separator, "key separator for nested format")
	fs.StringSliceVar(&cfg.Locale.AllowLanguages, "allow", cfg.Locale.AllowLanguages, "restrict to these language headers (repeatable or comma separated)")
	fs.BoolVar(&cfg.Locale.IncludeMissingAsEmpty, "include-missing-as-empty", cfg.Locale.IncludeMissingAsEmpty, "include missing translations as empty strings")
	fs.Bool("no-include-missing-as-empty", false, "do not include missing translations")
	fs.StringVar(&cfg.Locale.CommentPrefix, "comment-prefix", cfg.Locale.CommentPrefix, "skip rows whose key starts with this prefix (empty disables)")
	fs.BoolVar(&cfg.Locale.Strict, "strict", cfg.Locale.Strict, "fail when a key turns a value into a group or back")

	fs.StringVar(&cfg.Output.Namespace, "namespace", cfg.Output.Namespace, "document name inside each language directory")
	fs.StringVar(&cfg.Output.Encoding, "encoding", cfg.Output.Encoding, "document encoding: json or yaml")
}

// bindOutputFlags registers the flags that select where documents live.
func bindOutputFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Output.Dir, "out", cfg.Output.Dir, "output folder")
	fs.StringVar(&cfg.Output.Backend, "backend", cfg.Output.Backend, "output backend: fs or s3")
}

// applyNegations resolves --no-* flags after parsing.
func applyNegations(fs *pflag.FlagSet, cfg *config.Config) {
	if no, err := fs.GetBool("no-include-missing-as-empty"); err == nil && no {
		cfg.Locale.IncludeMissingAsEmpty = false
	}
}
