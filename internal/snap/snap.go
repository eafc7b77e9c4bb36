package snap

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"go.uber.org/zap"
)

// ErrSnapTargetMissing marks a ray hit on an object without connectivity
// data of the requested category
var ErrSnapTargetMissing = errors.New("hit object is not a snap target")

// Candidate is a resolved pointer sample
type Candidate struct {
	Point   geometry.Vector3
	Heading float64
	Snapped bool
	// Target is the segment snapped to, nil otherwise
	Target *road.Segment
}

// Query resolves pointer rays into snap candidates. It only reads the scene.
type Query struct {
	raycaster scene.Raycaster
	category  string
	ground    geometry.Plane
	log       *zap.Logger
}

// New creates a query against raycaster for objects tagged with category
func New(raycaster scene.Raycaster, category string, ground geometry.Plane, log *zap.Logger) *Query {
	if log == nil {
		log = zap.NewNop()
	}
	if category == "" {
		category = road.GeometryLine
	}
	if ground.Normal.IsZero() {
		ground = geometry.GroundPlane
	}
	return &Query{
		raycaster: raycaster,
		category:  category,
		ground:    ground,
		log:       log,
	}
}

// QuerySnapCandidate is a one-shot query against the ground plane
func QuerySnapCandidate(raycaster scene.Raycaster, ray geometry.Ray, category string) (Candidate, error) {
	return New(raycaster, category, geometry.GroundPlane, nil).Candidate(ray)
}

// Candidate casts the ray into the scene. A hit on a road of the query's
// category yields that road's connection point and heading; anything else
// falls back to the ground plane with heading 0.
func (q *Query) Candidate(ray geometry.Ray) (Candidate, error) {
	seg, err := q.target(ray)
	if err == nil {
		point, heading := seg.ConnectionPoint()
		return Candidate{
			Point:   point,
			Heading: heading,
			Snapped: true,
			Target:  seg,
		}, nil
	}
	if errors.Is(err, ErrSnapTargetMissing) {
		q.log.Debug("ray hit ignored", zap.Error(err))
	}

	point, err := geometry.IntersectPointerWithPlane(ray.Origin, ray.Direction, q.ground.Point, q.ground.Normal)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{Point: point}, nil
}

// target returns the snappable segment under the ray
func (q *Query) target(ray geometry.Ray) (*road.Segment, error) {
	hit, ok := q.raycaster.Raycast(ray)
	if !ok {
		return nil, errNoHit
	}
	if hit.Object.Segment == nil || hit.Object.Category() != q.category {
		return nil, fmt.Errorf("%s: %w", hit.Object.Name, ErrSnapTargetMissing)
	}
	return hit.Object.Segment, nil
}

var errNoHit = errors.New("no hit")
