package road

import (
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// GeometryLine tags straight plan-view geometry; it is the category snap
// queries look for.
const GeometryLine = "line"

// Persisted attribute keys, named after the OpenDRIVE planView fields
const (
	AttrGeometry   = "t_road_planView_geometry"
	AttrS          = "t_road_planView_geometry_s"
	AttrX          = "t_road_planView_geometry_x"
	AttrY          = "t_road_planView_geometry_y"
	AttrHeading    = "t_road_planView_geometry_hdg"
	AttrLength     = "t_road_planView_geometry_length"
	AttrPointStart = "point_start"
	AttrPointEnd   = "point_end"
	AttrID         = "id_opendrive"
)

// Segment is a committed straight road. Mesh vertices are local to Start.
type Segment struct {
	Mesh         *mesh.Mesh
	Geometry     string
	Start        geometry.Vector3
	End          geometry.Vector3
	Heading      float64
	Length       float64
	ConnectionID int
}

// ConnectionPoint is where a following segment snaps to: the end point and
// the heading it continues with.
func (s *Segment) ConnectionPoint() (geometry.Vector3, float64) {
	return s.End, s.Heading
}

// Attributes returns the on-object custom property view of the segment
func (s *Segment) Attributes() map[string]any {
	return map[string]any{
		AttrGeometry:   s.Geometry,
		AttrS:          0.0,
		AttrX:          s.Start.X,
		AttrY:          s.Start.Y,
		AttrHeading:    s.Heading,
		AttrLength:     s.Length,
		AttrPointStart: s.Start,
		AttrPointEnd:   s.End,
		AttrID:         s.ConnectionID,
	}
}

// Triangles returns the world-space triangles of the road surface
func (s *Segment) Triangles() []geometry.Triangle {
	if s.Mesh == nil {
		return nil
	}
	return s.Mesh.Triangles(s.Start)
}
