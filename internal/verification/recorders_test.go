package verification

import (
	"os"
	"sync"

	"github.com/desertwitch/structman/internal/schema"
)

// recordingOS wraps the real [schema.OS] and records all stat-ed paths.
type recordingOS struct {
	schema.OS
	sync.Mutex
	stats []string
}

func (r *recordingOS) Stat(name string) (os.FileInfo, error) {
	r.Lock()
	r.stats = append(r.stats, name)
	r.Unlock()

	return r.OS.Stat(name)
}

func (r *recordingOS) Stats() []string {
	r.Lock()
	defer r.Unlock()

	return append([]string(nil), r.stats...)
}

// recordingObserver records all [Observer] callbacks.
type recordingObserver struct {
	started  []schema.Kind
	finished []*Result
}

func (o *recordingObserver) RootStarted(kind schema.Kind, _ int, _ int) {
	o.started = append(o.started, kind)
}

func (o *recordingObserver) RootFinished(result *Result) {
	o.finished = append(o.finished, result)
}
