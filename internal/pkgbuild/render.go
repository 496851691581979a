package pkgbuild

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

// boilerplate is the fixed build/check/package block appended to every
// recipe. It is emitted verbatim; nothing is ever substituted into it.
//
//go:embed boilerplate.sh
var boilerplate string

// valueKind selects the line grammar for a declaration.
type valueKind int

const (
	bare   valueKind = iota // key=value
	quoted                  // key="value"
	list                    // key=("a", "b")
)

// field is one declaration line of the recipe.
type field struct {
	key    string
	kind   valueKind
	scalar string
	items  []string
}

// fields returns the declaration lines in PKGBUILD order. The order is part
// of the output contract and never varies with input.
func (r *Recipe) fields() []field {
	return []field{
		{key: "pkgname", kind: bare, scalar: r.Pkgname},
		{key: "pkgver", kind: bare, scalar: sanitizeVersion(r.Pkgver)},
		{key: "pkgrel", kind: bare, scalar: r.Pkgrel},
		{key: "epoch", kind: bare, scalar: r.Epoch},
		{key: "pkgdesc", kind: quoted, scalar: r.Pkgdesc},
		{key: "url", kind: quoted, scalar: r.URL},
		{key: "license", kind: list, items: r.License},
		{key: "install", kind: quoted, scalar: r.Install},
		{key: "changelog", kind: quoted, scalar: r.Changelog},
		{key: "source", kind: list, items: r.Source},
		{key: "validpgpkeys", kind: list, items: r.Validpgpkeys},
		{key: "noextract", kind: list, items: r.Noextract},
		{key: "md5sums", kind: list, items: r.Md5sums},
		{key: "sha1sums", kind: list, items: r.Sha1sums},
		{key: "sha256sums", kind: list, items: r.Sha256sums},
		{key: "sha384sums", kind: list, items: r.Sha384sums},
		{key: "sha512sums", kind: list, items: r.Sha512sums},
		{key: "groups", kind: list, items: r.Groups},
		{key: "arch", kind: list, items: r.Arch},
		{key: "backup", kind: list, items: r.Backup},
		{key: "depends", kind: list, items: r.Depends},
		{key: "makedepends", kind: list, items: r.Makedepends},
		{key: "checkdepends", kind: list, items: r.Checkdepends},
		{key: "optdepends", kind: list, items: r.Optdepends},
		{key: "conflicts", kind: list, items: r.Conflicts},
		{key: "provides", kind: list, items: r.Provides},
		{key: "replaces", kind: list, items: r.Replaces},
		{key: "options", kind: list, items: r.Options},
	}
}

// Write renders the recipe to w. The document is assembled in memory first,
// so a failing writer cannot observe a partial recipe.
func Write(w io.Writer, r *Recipe) error {
	buf := &bytes.Buffer{}

	for _, m := range r.Maintainers {
		fmt.Fprintf(buf, "# Maintainer: %s\n", m)
	}
	buf.WriteString("\n")

	for _, f := range r.fields() {
		switch f.kind {
		case bare:
			fmt.Fprintf(buf, "%s=%s\n", f.key, f.scalar)
		case quoted:
			fmt.Fprintf(buf, "%s=\"%s\"\n", f.key, f.scalar)
		case list:
			fmt.Fprintf(buf, "%s=(%s)\n", f.key, quoteItems(f.items))
		}
	}

	buf.WriteString("\n")
	buf.WriteString(boilerplate)

	_, err := io.Copy(w, buf)
	return err
}

// Render returns the recipe text.
func Render(r *Recipe) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&sb, r)
	return sb.String()
}

// sanitizeVersion rewrites hyphens to underscores; makepkg forbids "-" in
// pkgver. Only the rendered line changes, the resolved value keeps its
// original form.
func sanitizeVersion(v string) string {
	return strings.ReplaceAll(v, "-", "_")
}

// quoteItems joins list elements as double-quoted words. Elements are
// emitted verbatim, without escaping.
func quoteItems(items []string) string {
	if len(items) == 0 {
		return ""
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "\"" + it + "\""
	}
	return strings.Join(out, ", ")
}
