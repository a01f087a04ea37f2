package fontregistry

import (
	"archive/zip"
	"fmt"
	"sync"

	"github.com/ajacombs/maplabel/core"
	"github.com/ajacombs/maplabel/core/font"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/emirpasic/gods/sets/treeset"
)

// Registry is a type for holding the font bundles loaded for a tile build,
// keyed by script. At most one bundle per script.
type Registry struct {
	sync.Mutex
	bundles     map[script.Script]*font.Bundle
	scripts     *treeset.Set
	archivePath string
	frozen      bool
}

var globalBundleRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding the font bundles
// of the running build. Prefer passing a registry from NewRegistry
// explicitly; the singleton exists for tooling and for parity with the
// profile bootstrap.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalBundleRegistry = NewRegistry()
	})
	return globalBundleRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		bundles: make(map[script.Script]*font.Bundle),
		scripts: treeset.NewWithStringComparator(),
	}
	return fr
}

// SetArchivePath names the zip archive LoadBundle reads bundle tables from.
func (fr *Registry) SetArchivePath(path string) {
	fr.Lock()
	defer fr.Unlock()
	fr.archivePath = path
}

// LoadBundle reads the glyphtable for a script from the configured archive
// and stores it together with the font's display name and version.
//
// The archive entry is expected at "<displayName>-v<version>.glyphtable".
// Loading fails with EMISSING if the archive or the entry is absent, with
// EINVALID if the table is malformed or the registry is already frozen, and
// with EDUPLICATE if a bundle for the script is present. On failure the
// registry is left unchanged.
func (fr *Registry) LoadBundle(displayName string, version string, scr script.Script) error {
	fr.Lock()
	defer fr.Unlock()
	if fr.frozen {
		return core.Error(core.EINVALID, "bundle registry is frozen, cannot load %s", displayName)
	}
	if _, ok := fr.bundles[scr]; ok {
		tracer().Infof("registry keeps first bundle for script %s, rejects %s", scr, displayName)
		return core.Error(core.EDUPLICATE, "bundle for script %s already loaded", scr)
	}
	tbl, err := fr.readTable(bundleEntryName(displayName, version))
	if err != nil {
		return err
	}
	fr.bundles[scr] = &font.Bundle{
		Script:      scr,
		DisplayName: displayName,
		Version:     version,
		Table:       tbl,
	}
	fr.scripts.Add(string(scr))
	tracer().Infof("registry loaded bundle %s v%s for script %s (%d units)",
		displayName, version, scr, tbl.Len())
	return nil
}

func bundleEntryName(displayName, version string) string {
	return fmt.Sprintf("%s-v%s.glyphtable", displayName, version)
}

func (fr *Registry) readTable(entry string) (*font.EncodingTable, error) {
	zr, err := zip.OpenReader(fr.archivePath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "bundle archive not readable: %s", fr.archivePath)
	}
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "bundle entry not readable: %s", entry)
		}
		defer rc.Close()
		return font.ParseTable(rc)
	}
	return nil, core.Error(core.EMISSING, "bundle entry not in archive: %s", entry)
}

// Freeze flips the registry read-only. Call it after the startup load phase
// and before handing the registry to feature-processing workers; subsequent
// LoadBundle calls fail.
func (fr *Registry) Freeze() {
	fr.Lock()
	defer fr.Unlock()
	fr.frozen = true
	tracer().Infof("registry frozen with %d bundle(s)", len(fr.bundles))
}

// HasScript reports whether a bundle for scr has been loaded.
func (fr *Registry) HasScript(scr script.Script) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.bundles[scr]
	return ok
}

// Scripts returns the loaded scripts in lexicographic order.
func (fr *Registry) Scripts() []script.Script {
	fr.Lock()
	defer fr.Unlock()
	values := fr.scripts.Values()
	scripts := make([]script.Script, 0, len(values))
	for _, v := range values {
		scripts = append(scripts, script.Script(v.(string)))
	}
	return scripts
}

// Metadata returns display name and version of the bundle loaded for scr.
// Callers are expected to check HasScript first; querying an unloaded
// script is a contract violation and yields an EMISSING error.
func (fr *Registry) Metadata(scr script.Script) (displayName string, version string, err error) {
	fr.Lock()
	defer fr.Unlock()
	b, ok := fr.bundles[scr]
	if !ok {
		return "", "", core.Error(core.EMISSING, "no bundle loaded for script %s", scr)
	}
	return b.DisplayName, b.Version, nil
}

// Table returns the encoding table for scr, under the same contract as
// Metadata. It is meant for the text encoder, not for general use.
func (fr *Registry) Table(scr script.Script) (*font.EncodingTable, error) {
	fr.Lock()
	defer fr.Unlock()
	b, ok := fr.bundles[scr]
	if !ok {
		return nil, core.Error(core.EMISSING, "no bundle loaded for script %s", scr)
	}
	return b.Table, nil
}

// LogBundleList is a helper function to dump the list of loaded bundles to
// the trace-file (log-level Info).
func (fr *Registry) LogBundleList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- loaded font bundles ---")
	for scr, b := range fr.bundles {
		tracer().Infof("bundle [%s] = %s v%s, %d units", scr, b.DisplayName, b.Version, b.Table.Len())
	}
	tracer().Infof("---------------------------")
}
