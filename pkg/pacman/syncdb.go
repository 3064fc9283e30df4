// pkg/pacman/syncdb.go
package pacman

import (
	"fmt"
	"os"
	"path/filepath"
)

// syncIndex is an in-memory view of the local sync databases, used as an
// offline fallback when live index queries cannot run. Built once per run.
type syncIndex struct {
	packages  map[string]*PackageInfo
	providers map[string][]*PackageInfo
}

// loadSyncIndex parses every requested repo database under dir. Missing
// databases are skipped; an index built from zero databases is an error,
// since a lookup in it would misreport every package as absent.
func loadSyncIndex(dir string, repos []string) (*syncIndex, error) {
	idx := &syncIndex{
		packages:  make(map[string]*PackageInfo),
		providers: make(map[string][]*PackageInfo),
	}

	loaded := 0
	for _, repo := range repos {
		f, err := os.Open(filepath.Join(dir, repo+".db"))
		if err != nil {
			continue
		}

		pkgs, err := ParseSyncDatabase(f, repo)
		f.Close()
		if err != nil {
			continue
		}

		for _, p := range pkgs {
			idx.packages[p.Name] = p
			idx.providers[p.Name] = append(idx.providers[p.Name], p)
			for _, prov := range p.Provides {
				clean := cleanDepName(prov)
				idx.providers[clean] = append(idx.providers[clean], p)
			}
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no sync databases readable under %s", dir)
	}
	return idx, nil
}

// has reports whether a package name or virtual provider is in the index
func (idx *syncIndex) has(name string) bool {
	clean := cleanDepName(name)
	if _, ok := idx.packages[clean]; ok {
		return true
	}
	return len(idx.providers[clean]) > 0
}
