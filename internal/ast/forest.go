package ast

// Forest is the result of parsing a project: every discovered Source
// alongside its parsed Tree, one-to-one by origin.
type Forest struct {
	Sources []Source
	Trees   []*Tree
}

// NewForest pairs sources and trees into a Forest. Callers are
// responsible for keeping the two slices aligned one-to-one by origin
// (internal/pipeline guarantees this when it assembles a Forest).
func NewForest(sources []Source, trees []*Tree) *Forest {
	return &Forest{Sources: sources, Trees: trees}
}

// SourceFor returns the Source whose origin equals origin, and whether
// it was found.
func (f *Forest) SourceFor(origin string) (Source, bool) {
	for _, s := range f.Sources {
		if s.Origin == origin {
			return s, true
		}
	}
	return Source{}, false
}
