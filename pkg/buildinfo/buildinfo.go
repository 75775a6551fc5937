// Package buildinfo reads the version metadata Firefox ships next to its
// executable in application.ini.
package buildinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/platform"
	"github.com/hashicorp/go-version"
	"gopkg.in/ini.v1"
)

// FileName is the name of the metadata file inside a build.
const FileName = "application.ini"

// Info describes an extracted build.
type Info struct {
	Name             string
	Version          *version.Version
	BuildID          string
	SourceRepository string
	SourceStamp      string
}

// String returns "Name Version (BuildID)".
func (i *Info) String() string {
	return fmt.Sprintf("%s %s (%s)", i.Name, i.Version.Original(), i.BuildID)
}

// Path returns where application.ini lives for a build of target extracted into dir.
func Path(dir string, target platform.Target) string {
	if target == platform.Darwin {
		return filepath.Join(dir, "Firefox.app", "Contents", "Resources", FileName)
	}
	return filepath.Join(dir, "firefox", FileName)
}

// Read locates application.ini for a build extracted into dir. Every
// layout is tried, so the platform does not need to be known.
func Read(dir string) (*Info, error) {
	for _, target := range []platform.Target{platform.Linux, platform.Darwin} {
		path := Path(dir, target)
		if _, err := os.Stat(path); err == nil {
			return ReadFile(path)
		}
	}
	return nil, errors.Wrapf(errors.ErrBuildInfoNotFound, "in %s", dir)
}

// ReadFile parses the application.ini at path.
func ReadFile(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.ErrBuildInfoNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(data)
}

// Parse decodes application.ini content. The [App] section must carry a
// parseable Version.
func Parse(data []byte) (*Info, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBuildInfoInvalid, err)
	}

	app, err := cfg.GetSection("App")
	if err != nil {
		return nil, fmt.Errorf("%w: missing [App] section", errors.ErrBuildInfoInvalid)
	}

	raw := app.Key("Version").String()
	if raw == "" {
		return nil, fmt.Errorf("%w: missing Version", errors.ErrBuildInfoInvalid)
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %w", errors.ErrBuildInfoInvalid, raw, err)
	}

	return &Info{
		Name:             app.Key("Name").String(),
		Version:          v,
		BuildID:          app.Key("BuildID").String(),
		SourceRepository: app.Key("SourceRepository").String(),
		SourceStamp:      app.Key("SourceStamp").String(),
	}, nil
}

// IsNightly reports whether the build carries a pre-release suffix such as a1.
func (i *Info) IsNightly() bool {
	return i.Version.Prerelease() != ""
}
