// Package pkgbuild resolves Cargo manifests into PKGBUILD recipes and
// renders them to text.
package pkgbuild

// Recipe is a fully resolved PKGBUILD. Every field holds its final value;
// rendering is a pure function of this struct and never consults the
// manifest again.
type Recipe struct {
	// Maintainers become "# Maintainer:" header lines, in order.
	Maintainers []string

	Pkgname   string
	Pkgver    string
	Pkgrel    string
	Epoch     string
	Pkgdesc   string
	URL       string
	License   []string
	Install   string
	Changelog string

	Source       []string
	Validpgpkeys []string
	Noextract    []string
	Md5sums      []string
	Sha1sums     []string
	Sha256sums   []string
	Sha384sums   []string
	Sha512sums   []string

	Groups []string
	Arch   []string
	Backup []string

	Depends      []string
	Makedepends  []string
	Checkdepends []string
	Optdepends   []string

	Conflicts []string
	Provides  []string
	Replaces  []string
	Options   []string
}
