package impl

import (
	"sort"

	"souq/internal/usecase"
)

type browserRegistry struct {
	browsers map[string]usecase.CatalogBrowserUsecase
	kinds    []string
}

// NewBrowserRegistry wraps per-kind browsers behind a lookup. The map is
// assembled at wiring time from the catalog configuration.
func NewBrowserRegistry(browsers map[string]usecase.CatalogBrowserUsecase) usecase.BrowserRegistry {
	kinds := make([]string, 0, len(browsers))
	for kind := range browsers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return &browserRegistry{
		browsers: browsers,
		kinds:    kinds,
	}
}

func (r *browserRegistry) Browser(kind string) (usecase.CatalogBrowserUsecase, bool) {
	browser, ok := r.browsers[kind]

	return browser, ok
}

func (r *browserRegistry) Kinds() []string {
	return r.kinds
}

func (r *browserRegistry) Close() {
	for _, browser := range r.browsers {
		browser.Close()
	}
}
