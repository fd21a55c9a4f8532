// Package workload loads and generates key/id sequences to drive a
// dictionary.Dictionary, analogous to the record sequences a C++ harness
// would feed into ConstructDictionary.
package workload

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
)

// Workload is an ordered sequence of key/id pairs, mirroring the
// original_source Key{key, id} record.
type Workload struct {
	Records []bptree.Record
}

// Load parses a workload file of "key,id" lines, one record per line.
// Blank lines and lines starting with "#" are skipped.
func Load(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload file: %w", err)
	}
	defer f.Close()

	w := &Workload{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("workload file %s line %d: expected \"key,id\", got %q", path, lineNo, line)
		}

		key, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("workload file %s line %d: bad key: %w", path, lineNo, err)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("workload file %s line %d: bad id: %w", path, lineNo, err)
		}

		w.Records = append(w.Records, bptree.Record{Key: int32(key), Value: int32(id)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan workload file: %w", err)
	}

	return w, nil
}

// Generate produces a pseudo-random workload of n records. When shuffle
// is false the keys are produced in ascending order (0..n-1); when true
// they are shuffled with the given seed, exercising the insertion-order
// independence the core promises.
func Generate(n int, seed int64, shuffle bool) *Workload {
	records := make([]bptree.Record, n)
	for i := 0; i < n; i++ {
		records[i] = bptree.Record{Key: int32(i), Value: int32(i)}
	}

	if shuffle {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})
	}

	return &Workload{Records: records}
}

// Save writes the workload back out in "key,id" form, primarily useful
// for persisting a Generate()d workload for later replay.
func Save(path string, w *Workload) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workload file: %w", err)
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	for _, rec := range w.Records {
		if _, err := fmt.Fprintf(writer, "%d,%d\n", rec.Key, rec.Value); err != nil {
			return fmt.Errorf("write workload record: %w", err)
		}
	}
	return writer.Flush()
}
