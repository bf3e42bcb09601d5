package engine

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Result is the outcome of running one view: the rows in their defined
// order plus the fixed column order callers rely on for rendering.
type Result struct {
	View    string
	Columns []string
	Rows    []Row
}

// QueryFacade exposes the named analytical views over one store. Every
// view is recomputed from a fresh snapshot on each call; two calls
// against an unchanged store return identical results.
type QueryFacade struct {
	store  *Store
	logger *zap.SugaredLogger
	views  map[string]viewDef
	names  []string
}

func NewQueryFacade(store *Store, logger *zap.SugaredLogger) *QueryFacade {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	f := &QueryFacade{
		store:  store,
		logger: logger,
		views:  make(map[string]viewDef),
	}
	for _, d := range viewDefs() {
		f.views[d.name] = d
		f.names = append(f.names, d.name)
	}
	sort.Strings(f.names)
	return f
}

// ListViewNames returns every known view name, sorted.
func (f *QueryFacade) ListViewNames() []string {
	return append([]string(nil), f.names...)
}

// RunView computes the named view against the current store contents.
func (f *QueryFacade) RunView(name string) (*Result, error) {
	d, ok := f.views[name]
	if !ok {
		return nil, fmt.Errorf("view %q: %w", name, ErrUnknownView)
	}
	rows := d.compute(f.store.Snapshot())
	f.logger.Debugw("view computed", "view", name, "rows", len(rows))
	return &Result{
		View:    name,
		Columns: append([]string(nil), d.columns...),
		Rows:    rows,
	}, nil
}
