// Package manifest loads Cargo manifests and exposes the fields a build
// recipe draws from.
package manifest

// Manifest is a decoded Cargo.toml. It is never mutated after decoding;
// recipe resolution copies values out of it.
type Manifest struct {
	// Package is the [package] table.
	Package Package `toml:"package"`
}

// Package holds the [package] table fields used for recipe generation.
// Dependency tables are not decoded; build recipes fetch the crate and let
// its own build resolve dependencies.
type Package struct {
	// Name is the crate name.
	Name string `toml:"name"`

	// Version is the crate version as written (may contain hyphens).
	Version string `toml:"version"`

	// Authors lists the crate authors in declaration order.
	Authors []string `toml:"authors"`

	// Description is the one-line crate description.
	Description string `toml:"description"`

	// License is the license expression; alternatives are separated with "/".
	License string `toml:"license"`

	// Homepage is the project homepage. Absent and empty are distinct:
	// an empty homepage still wins the url fallback chain.
	Homepage *string `toml:"homepage"`

	// Repository is the source repository URL.
	Repository *string `toml:"repository"`

	// Metadata is the [package.metadata] table.
	Metadata *Metadata `toml:"metadata"`
}

// Metadata is the [package.metadata] table.
type Metadata struct {
	// Arch is the [package.metadata.arch] override table.
	Arch *Overrides `toml:"arch"`
}

// Overrides is the sparse [package.metadata.arch] table. Keys mirror the
// PKGBUILD variables they override. A nil field means the key was absent
// from the manifest; an explicitly empty array is a present override.
type Overrides struct {
	Maintainers  []string `toml:"maintainers"`
	Pkgname      *string  `toml:"pkgname"`
	Pkgver       *string  `toml:"pkgver"`
	Pkgrel       *string  `toml:"pkgrel"`
	Epoch        *string  `toml:"epoch"`
	Pkgdesc      *string  `toml:"pkgdesc"`
	URL          *string  `toml:"url"`
	License      []string `toml:"license"`
	Install      *string  `toml:"install"`
	Changelog    *string  `toml:"changelog"`
	Source       []string `toml:"source"`
	Validpgpkeys []string `toml:"validpgpkeys"`
	Noextract    []string `toml:"noextract"`
	Md5sums      []string `toml:"md5sums"`
	Sha1sums     []string `toml:"sha1sums"`
	Sha256sums   []string `toml:"sha256sums"`
	Sha384sums   []string `toml:"sha384sums"`
	Sha512sums   []string `toml:"sha512sums"`
	Groups       []string `toml:"groups"`
	Arch         []string `toml:"arch"`
	Backup       []string `toml:"backup"`
	Depends      []string `toml:"depends"`
	Makedepends  []string `toml:"makedepends"`
	Checkdepends []string `toml:"checkdepends"`
	Optdepends   []string `toml:"optdepends"`
	Conflicts    []string `toml:"conflicts"`
	Provides     []string `toml:"provides"`
	Replaces     []string `toml:"replaces"`
	Options      []string `toml:"options"`
}

// Overrides returns the [package.metadata.arch] table, or an empty table
// when the manifest carries none. The result is safe to read field by field
// without further nil checks.
func (m *Manifest) Overrides() *Overrides {
	if m.Package.Metadata == nil || m.Package.Metadata.Arch == nil {
		return &Overrides{}
	}
	return m.Package.Metadata.Arch
}
