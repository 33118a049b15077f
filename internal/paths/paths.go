// Package paths computes every local and remote location a screenshot run
// touches from the configuration and a single capture timestamp.
package paths

import (
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/oroddlokken/selca/internal/config"
)

// Paths is the full set of derived locations for one capture. It is computed
// once by Derive and never mutated; every field refers to the same instant.
//
// The remote fields are empty strings unless remote publishing is enabled
// (and RemoteURL additionally requires a configured base URL). Callers must
// check Config.SFTPEnabled before relying on them.
type Paths struct {
	// RelativePath is the timestamp formatted through the fname template,
	// e.g. "2024/03/05/142201.png". May contain subdirectories.
	RelativePath string

	LocalPath string // absolute path the screenshot is written to
	LocalDir  string // directory portion of LocalPath

	RemoteDir    string // remote directory to mkdir -p before upload
	RemotePath   string // full remote path of the uploaded file
	RemoteURL    string // public URL, empty without a baseurl
	RemoteTarget string // user@host:path destination for rsync
}

// Basename returns the file-name portion of the relative path, used as the
// notification title.
func (p *Paths) Basename() string {
	return filepath.Base(p.RelativePath)
}

// Derive computes all paths for cfg at the capture instant ts. The fname
// template uses strftime directives (%Y, %m, %d, %H, %M, %S, ...).
func Derive(cfg *config.Config, ts time.Time) (*Paths, error) {
	rel, err := strftime.Format(cfg.FName, ts)
	if err != nil {
		return nil, fmt.Errorf("format fname template %q: %w", cfg.FName, err)
	}

	local := filepath.Join(config.ExpandUser(cfg.Directory), rel)

	p := &Paths{
		RelativePath: rel,
		LocalPath:    local,
		LocalDir:     filepath.Dir(local),
	}

	if cfg.SFTPEnabled() {
		// cfg.SFTP.Directory carries its trailing "/" from config.Load,
		// so plain concatenation is correct for the rsync target.
		p.RemoteDir = path.Join(cfg.SFTP.Directory, path.Dir(rel))
		p.RemotePath = path.Join(p.RemoteDir, path.Base(rel))
		p.RemoteTarget = fmt.Sprintf("%s@%s:%s%s", cfg.SFTP.User, cfg.SFTP.Host, cfg.SFTP.Directory, rel)
		if cfg.SFTP.BaseURL != "" {
			p.RemoteURL = cfg.SFTP.BaseURL + rel
		}
	}

	return p, nil
}
