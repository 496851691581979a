package pkgbuild

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arch-tools/pkgsmith/internal/manifest"
)

// fieldKeys extracts the declaration keys from rendered output, in order.
func fieldKeys(t *testing.T, rendered string) []string {
	t.Helper()

	lines := strings.Split(rendered, "\n")
	i := 0
	for ; i < len(lines); i++ {
		if lines[i] == "" {
			break
		}
	}
	i++ // skip the blank line after the maintainer block

	var keys []string
	for ; i < len(lines) && lines[i] != ""; i++ {
		key, _, ok := strings.Cut(lines[i], "=")
		require.True(t, ok, "declaration line without '=': %q", lines[i])
		keys = append(keys, key)
	}
	return keys
}

var wantFieldOrder = []string{
	"pkgname", "pkgver", "pkgrel", "epoch", "pkgdesc", "url", "license",
	"install", "changelog", "source", "validpgpkeys", "noextract",
	"md5sums", "sha1sums", "sha256sums", "sha384sums", "sha512sums",
	"groups", "arch", "backup", "depends", "makedepends", "checkdepends",
	"optdepends", "conflicts", "provides", "replaces", "options",
}

func TestRender_FieldOrder(t *testing.T) {
	r, err := Resolve(minimalManifest())
	require.NoError(t, err)

	assert.Equal(t, wantFieldOrder, fieldKeys(t, Render(r)))
}

func TestRender_FieldOrderUnaffectedByOverrides(t *testing.T) {
	m := withOverrides(minimalManifest(), &manifest.Overrides{
		Options: []string{"!strip"},
		Source:  []string{"demo.tar.gz"},
		Epoch:   strptr("1"),
	})
	r, err := Resolve(m)
	require.NoError(t, err)

	assert.Equal(t, wantFieldOrder, fieldKeys(t, Render(r)))
}

func TestRender_GoldenDocument(t *testing.T) {
	m, err := manifest.Load(filepath.Join("testdata", "Cargo.toml"))
	require.NoError(t, err)

	r, err := Resolve(m)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "PKGBUILD.golden"))
	require.NoError(t, err)

	if diff := cmp.Diff(string(want), Render(r)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRender_SanitizesVersion(t *testing.T) {
	m := minimalManifest()
	m.Package.Version = "1.0.0-alpha-2"

	r, err := Resolve(m)
	require.NoError(t, err)

	out := Render(r)
	assert.Contains(t, out, "pkgver=1.0.0_alpha_2\n")
	assert.NotContains(t, out, "pkgver=1.0.0-alpha-2")
	// The recipe itself keeps the raw version.
	assert.Equal(t, "1.0.0-alpha-2", r.Pkgver)
}

func TestRender_QuotedScalars(t *testing.T) {
	m := minimalManifest()
	m.Package.Description = `says "hi" for $5`

	r, err := Resolve(m)
	require.NoError(t, err)

	// Scalar values are emitted verbatim between the quotes, without
	// escaping.
	assert.Contains(t, Render(r), `pkgdesc="says "hi" for $5"`+"\n")
}

func TestRender_EmptyQuotedScalars(t *testing.T) {
	r, err := Resolve(minimalManifest())
	require.NoError(t, err)

	out := Render(r)
	assert.Contains(t, out, "url=\"\"\n")
	assert.Contains(t, out, "install=\"\"\n")
	assert.Contains(t, out, "changelog=\"\"\n")
}

func TestRender_Lists(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", []string{}, "depends=()\n"},
		{"single", []string{"glibc"}, "depends=(\"glibc\")\n"},
		{"multiple", []string{"glibc", "openssl"}, "depends=(\"glibc\", \"openssl\")\n"},
		{"verbatim elements", []string{"demo: opt desc"}, "depends=(\"demo: opt desc\")\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := withOverrides(minimalManifest(), &manifest.Overrides{Depends: tt.items})
			r, err := Resolve(m)
			require.NoError(t, err)

			assert.Contains(t, Render(r), tt.want)
		})
	}
}

func TestRender_MaintainerHeader(t *testing.T) {
	m := minimalManifest()
	m.Package.Authors = []string{"A <a@x.com>", "B <b@x.com>"}

	r, err := Resolve(m)
	require.NoError(t, err)

	out := Render(r)
	assert.True(t, strings.HasPrefix(out,
		"# Maintainer: A <a@x.com>\n# Maintainer: B <b@x.com>\n\npkgname=demo\n"),
		"unexpected document head:\n%s", out)
}

func TestRender_NoMaintainersKeepsBlankLine(t *testing.T) {
	m := minimalManifest()
	m.Package.Authors = []string{}

	r, err := Resolve(m)
	require.NoError(t, err)

	out := Render(r)
	assert.True(t, strings.HasPrefix(out, "\npkgname=demo\n"),
		"blank separator line must survive an empty maintainer list:\n%s", out)
}

func TestRender_BoilerplateAppendedVerbatim(t *testing.T) {
	r, err := Resolve(minimalManifest())
	require.NoError(t, err)

	out := Render(r)
	require.NotEmpty(t, boilerplate)
	// Exactly one blank line between the last declaration and the
	// boilerplate block.
	assert.True(t, strings.HasSuffix(out, "options=()\n\n"+boilerplate),
		"document must end with the verbatim boilerplate:\n%s", out)
}

func TestRender_Idempotent(t *testing.T) {
	m := withOverrides(minimalManifest(), &manifest.Overrides{
		Arch:   []string{"x86_64"},
		Source: []string{"demo-0.1.0.tar.gz"},
	})
	r, err := Resolve(m)
	require.NoError(t, err)

	assert.Equal(t, Render(r), Render(r))
}

func TestWrite_MatchesRender(t *testing.T) {
	r, err := Resolve(minimalManifest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	assert.Equal(t, Render(r), buf.String())
}
