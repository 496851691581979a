package pkgbuild

import (
	"errors"
	"strings"

	"github.com/arch-tools/pkgsmith/internal/manifest"
)

// Resolution errors for fields that have no fallback.
var (
	// ErrMissingName indicates neither package.name nor a pkgname override is set.
	ErrMissingName = errors.New("missing package name")

	// ErrMissingVersion indicates neither package.version nor a pkgver override is set.
	ErrMissingVersion = errors.New("missing package version")

	// ErrMissingDescription indicates neither package.description nor a pkgdesc override is set.
	ErrMissingDescription = errors.New("missing package description")

	// ErrMissingLicense indicates neither package.license nor a license override is set.
	ErrMissingLicense = errors.New("missing package license")

	// ErrMissingAuthors indicates neither package.authors nor a maintainers override is set.
	ErrMissingAuthors = errors.New("missing package authors")
)

// Resolve merges a manifest and its [package.metadata.arch] table into a
// fully populated Recipe. Every field is resolved independently: the
// override wins when present, otherwise the field falls back to its
// manifest counterpart, a fixed default, or an empty value. Values are
// cloned out of the manifest, so the Recipe never aliases it.
func Resolve(m *manifest.Manifest) (*Recipe, error) {
	pkg := m.Package
	ov := m.Overrides()

	pkgname := stringOr(ov.Pkgname, pkg.Name)
	if pkgname == "" {
		return nil, ErrMissingName
	}

	pkgver := stringOr(ov.Pkgver, pkg.Version)
	if pkgver == "" {
		return nil, ErrMissingVersion
	}

	pkgdesc := stringOr(ov.Pkgdesc, pkg.Description)
	if pkgdesc == "" {
		return nil, ErrMissingDescription
	}

	maintainers := ov.Maintainers
	if maintainers == nil {
		maintainers = pkg.Authors
	}
	if maintainers == nil {
		return nil, ErrMissingAuthors
	}

	license := ov.License
	if license == nil {
		if pkg.License == "" {
			return nil, ErrMissingLicense
		}
		license = splitLicense(pkg.License)
	}

	// url falls through a fixed chain; the first key present in the
	// manifest wins even when its value is empty.
	var url string
	switch {
	case ov.URL != nil:
		url = *ov.URL
	case pkg.Homepage != nil:
		url = *pkg.Homepage
	case pkg.Repository != nil:
		url = *pkg.Repository
	}

	return &Recipe{
		Maintainers: cloneList(maintainers),
		Pkgname:     pkgname,
		Pkgver:      pkgver,
		Pkgrel:      stringOr(ov.Pkgrel, "1"),
		Epoch:       stringOr(ov.Epoch, "0"),
		Pkgdesc:     pkgdesc,
		URL:         url,
		License:     cloneList(license),
		Install:     stringOr(ov.Install, ""),
		Changelog:   stringOr(ov.Changelog, ""),

		Source:       listOr(ov.Source),
		Validpgpkeys: listOr(ov.Validpgpkeys),
		Noextract:    listOr(ov.Noextract),
		Md5sums:      listOr(ov.Md5sums),
		Sha1sums:     listOr(ov.Sha1sums),
		Sha256sums:   listOr(ov.Sha256sums),
		Sha384sums:   listOr(ov.Sha384sums),
		Sha512sums:   listOr(ov.Sha512sums),

		Groups: listOr(ov.Groups),
		Arch:   listOr(ov.Arch),
		Backup: listOr(ov.Backup),

		Depends:      listOr(ov.Depends),
		Makedepends:  listOr(ov.Makedepends),
		Checkdepends: listOr(ov.Checkdepends),
		Optdepends:   listOr(ov.Optdepends),

		Conflicts: listOr(ov.Conflicts),
		Provides:  listOr(ov.Provides),
		Replaces:  listOr(ov.Replaces),
		Options:   listOr(ov.Options),
	}, nil
}

// splitLicense splits a slash-delimited license expression into trimmed
// parts. The parts are not validated; an expression without "/" yields a
// single-element list.
func splitLicense(expr string) []string {
	parts := strings.Split(expr, "/")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// stringOr returns the override value when present, else the fallback.
func stringOr(override *string, fallback string) string {
	if override != nil {
		return *override
	}
	return fallback
}

// listOr returns a copy of the override list when present, else an empty
// list.
func listOr(override []string) []string {
	if override == nil {
		return []string{}
	}
	return cloneList(override)
}

// cloneList copies a slice so the recipe does not alias manifest data.
func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
