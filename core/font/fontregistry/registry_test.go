package fontregistry

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajacombs/maplabel/core"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const devaTable = `glyphtable 1
0915      37
092E      41
0928      48
0938 094D 77
0924 0947 78
`

const grekTable = `glyphtable 1
0391 1
0392 2
`

// writeArchive creates a bundle zip in a test temp dir.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "encoding.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBundleAndMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"NotoSansDevanagari-Regular-v1.glyphtable": devaTable,
	}))
	if err := reg.LoadBundle("NotoSansDevanagari-Regular", "1", script.Devanagari); err != nil {
		t.Fatalf("expected bundle to load, got %v", err)
	}
	if !reg.HasScript(script.Devanagari) {
		t.Errorf("expected registry to have Devanagari")
	}
	name, version, err := reg.Metadata(script.Devanagari)
	if err != nil {
		t.Fatalf("expected metadata, got %v", err)
	}
	if name != "NotoSansDevanagari-Regular" || version != "1" {
		t.Errorf("expected exact name/version pair back, got %s/%s", name, version)
	}
	if _, err := reg.Table(script.Devanagari); err != nil {
		t.Errorf("expected a table for Devanagari, got %v", err)
	}
}

func TestLoadBundleMissingEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"NotoSansDevanagari-Regular-v1.glyphtable": devaTable,
	}))
	err := reg.LoadBundle("NotoSerifKhmer-Regular", "3", script.Khmer)
	if err == nil {
		t.Fatalf("expected load of missing entry to fail")
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING, got code %d", core.Code(err))
	}
	// store must be unchanged
	if reg.HasScript(script.Khmer) {
		t.Errorf("expected no partial bundle for Khmer")
	}
	if len(reg.Scripts()) != 0 {
		t.Errorf("expected empty script set, have %v", reg.Scripts())
	}
}

func TestLoadBundleMissingArchive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(filepath.Join(t.TempDir(), "no-such.zip"))
	err := reg.LoadBundle("NotoSansDevanagari-Regular", "1", script.Devanagari)
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for absent archive, got %v", err)
	}
}

func TestLoadBundleMalformedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"Broken-v1.glyphtable": "glyphtable 1\n0915 0\n",
	}))
	err := reg.LoadBundle("Broken", "1", script.Devanagari)
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected EINVALID for malformed table, got %v", err)
	}
	if reg.HasScript(script.Devanagari) {
		t.Errorf("expected no bundle recorded after failed load")
	}
}

func TestDuplicateLoadRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"NotoSansDevanagari-Regular-v1.glyphtable":  devaTable,
		"NotoSerifDevanagari-Regular-v2.glyphtable": devaTable,
	}))
	if err := reg.LoadBundle("NotoSansDevanagari-Regular", "1", script.Devanagari); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	err := reg.LoadBundle("NotoSerifDevanagari-Regular", "2", script.Devanagari)
	if core.Code(err) != core.EDUPLICATE {
		t.Errorf("expected EDUPLICATE for second load, got %v", err)
	}
	// first bundle wins
	name, version, _ := reg.Metadata(script.Devanagari)
	if name != "NotoSansDevanagari-Regular" || version != "1" {
		t.Errorf("expected first bundle to be kept, got %s/%s", name, version)
	}
}

func TestFrozenRegistryRejectsLoads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"NotoSansDevanagari-Regular-v1.glyphtable": devaTable,
	}))
	reg.Freeze()
	err := reg.LoadBundle("NotoSansDevanagari-Regular", "1", script.Devanagari)
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected EINVALID after freeze, got %v", err)
	}
}

func TestScriptsSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	reg.SetArchivePath(writeArchive(t, map[string]string{
		"NotoSansDevanagari-Regular-v1.glyphtable": devaTable,
		"NotoSansGreek-Regular-v2.glyphtable":      grekTable,
	}))
	if err := reg.LoadBundle("NotoSansGreek-Regular", "2", script.Greek); err != nil {
		t.Fatal(err)
	}
	if err := reg.LoadBundle("NotoSansDevanagari-Regular", "1", script.Devanagari); err != nil {
		t.Fatal(err)
	}
	scripts := reg.Scripts()
	if len(scripts) != 2 || scripts[0] != script.Devanagari || scripts[1] != script.Greek {
		t.Errorf("expected sorted [Devanagari Greek], got %v", scripts)
	}
}

func TestUnloadedScriptQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	reg := NewRegistry()
	if _, _, err := reg.Metadata(script.Thai); core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING from Metadata for unloaded script")
	}
	if _, err := reg.Table(script.Thai); core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING from Table for unloaded script")
	}
}
