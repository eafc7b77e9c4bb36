package export

import (
	"io"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/stl"
)

// Model collects the road surfaces into one STL model
func Model(segments []*road.Segment, name string) *stl.Model {
	if name == "" {
		name = road.DefaultMeshName
	}
	model := stl.NewModel(name)
	for _, seg := range segments {
		model.AddTriangles(seg.Triangles()...)
	}
	return model
}

// WriteSTL writes the road surfaces as binary STL
func WriteSTL(w io.Writer, segments []*road.Segment, opts Options) error {
	return stl.WriteBinary(w, Model(segments, opts.Name))
}
