/* ==================================================================================== *\
     config.go

     Descriptor loaders: the on-disk/on-database shapes a deployment keeps
     its zone catalog in, before anything becomes a zone.Zone. Grounded on
     the teacher's readers.go loaders (warts directory fan-out, sqlite
     annotation reader).
\* ==================================================================================== */

package config

import (
	"encoding/json"
	"log"
	"os"
	"sort"

	pool "github.com/Emeline-1/pool"
	"github.com/pkg/errors"

	"github.com/Emeline-1/zonefield/zone"
)

// descriptorFile is the on-disk JSON shape of a single zone descriptor.
type descriptorFile struct {
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Pos1       []int                  `json:"pos1"`
	Pos2       []int                  `json:"pos2"`
	OriginalID *int                   `json:"original_id"`
	Payload    map[string]interface{} `json:"payload"`
}

// LoadFile parses a single JSON descriptor file.
func LoadFile(path string) (zone.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return zone.Descriptor{}, errors.Wrapf(err, "reading %s", path)
	}

	var raw descriptorFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return zone.Descriptor{}, errors.Wrapf(err, "parsing %s", path)
	}

	return zone.Descriptor{
		Name:    raw.Name,
		Type:    raw.Type,
		Pos1:    raw.Pos1,
		Pos2:    raw.Pos2,
		Payload: raw.Payload,
	}, nil
}

// recoverAndLog recovers from a panic in a single worker and logs it,
// adapted from the teacher's recovery_function (misc.go): one bad file
// must not bring down the whole directory fan-out.
func recoverAndLog(path string, acc *safeResults) {
	if r := recover(); r != nil {
		log.Printf("LoadDir: recovered from panic parsing %s: %v", path, r)
		acc.fail(path, errors.Errorf("panic parsing %s: %v", path, r))
	}
}

// LoadDir parses every *.json descriptor file in dir concurrently, then
// restores priority order: files whose original_id is set are placed at
// that index, the rest fill the remaining slots in path order. Grounded
// on readers.go's parse_warts -- pool.Get_directory_files feeding
// pool.Launch_pool with a fixed worker count, writing into a
// mutex-protected accumulator instead of returning per-worker results.
func LoadDir(dir string) ([]zone.Descriptor, error) {
	files := pool.Get_directory_files(dir)
	if files == nil {
		return nil, errors.Errorf("LoadDir: problem while listing directory %s", dir)
	}

	var jsonFiles []string
	for _, f := range *files {
		if len(f) >= 5 && f[len(f)-5:] == ".json" {
			jsonFiles = append(jsonFiles, f)
		}
	}
	if len(jsonFiles) == 0 {
		return nil, nil
	}

	acc := newSafeResults()
	worker := func(path string) {
		defer recoverAndLog(path, acc)

		d, err := LoadFile(path)
		if err != nil {
			acc.fail(path, err)
			log.Printf("LoadDir: failed to load %s: %v", path, err)
			return
		}

		data, readErr := os.ReadFile(path)
		var raw descriptorFile
		if readErr == nil {
			_ = json.Unmarshal(data, &raw)
		}
		acc.add(path, loadResult{path: path, descriptor: d, originalID: raw.OriginalID})
	}

	pool.Launch_pool(16, jsonFiles, worker)

	results, errs := acc.drain()
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return orderResults(results), nil
}

// orderResults restores a deterministic descriptor order out of a
// concurrently populated, arbitrarily ordered result set: entries that
// named an explicit original_id go to that slot, the rest fill the
// remaining slots sorted by source path.
func orderResults(results []loadResult) []zone.Descriptor {
	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	placed := make(map[int]zone.Descriptor)
	var unplaced []zone.Descriptor
	maxID := -1
	for _, r := range results {
		if r.originalID != nil {
			placed[*r.originalID] = r.descriptor
			if *r.originalID > maxID {
				maxID = *r.originalID
			}
		} else {
			unplaced = append(unplaced, r.descriptor)
		}
	}

	size := len(results)
	if maxID+1 > size {
		size = maxID + 1
	}

	out := make([]zone.Descriptor, 0, size)
	u := 0
	for i := 0; i < size; i++ {
		if d, ok := placed[i]; ok {
			out = append(out, d)
		} else if u < len(unplaced) {
			out = append(out, unplaced[u])
			u++
		}
	}
	for ; u < len(unplaced); u++ {
		out = append(out, unplaced[u])
	}

	return out
}
