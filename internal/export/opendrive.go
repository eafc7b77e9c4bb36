package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

type odrDocument struct {
	XMLName xml.Name  `xml:"OpenDRIVE"`
	Header  odrHeader `xml:"header"`
	Roads   []odrRoad `xml:"road"`
}

type odrHeader struct {
	RevMajor int     `xml:"revMajor,attr"`
	RevMinor int     `xml:"revMinor,attr"`
	Name     string  `xml:"name,attr"`
	Date     string  `xml:"date,attr"`
	North    float64 `xml:"north,attr"`
	South    float64 `xml:"south,attr"`
	East     float64 `xml:"east,attr"`
	West     float64 `xml:"west,attr"`
}

type odrRoad struct {
	Name     string      `xml:"name,attr"`
	Length   float64     `xml:"length,attr"`
	ID       string      `xml:"id,attr"`
	Junction string      `xml:"junction,attr"`
	PlanView odrPlanView `xml:"planView"`
	Lanes    odrLanes    `xml:"lanes"`
}

type odrPlanView struct {
	Geometry []odrGeometry `xml:"geometry"`
}

type odrGeometry struct {
	S      float64   `xml:"s,attr"`
	X      float64   `xml:"x,attr"`
	Y      float64   `xml:"y,attr"`
	Hdg    float64   `xml:"hdg,attr"`
	Length float64   `xml:"length,attr"`
	Line   *struct{} `xml:"line"`
}

type odrLanes struct {
	Section odrLaneSection `xml:"laneSection"`
}

type odrLaneSection struct {
	S      float64      `xml:"s,attr"`
	Left   odrLaneGroup `xml:"left"`
	Center odrLaneGroup `xml:"center"`
	Right  odrLaneGroup `xml:"right"`
}

type odrLaneGroup struct {
	Lanes []odrLane `xml:"lane"`
}

type odrLane struct {
	ID    int       `xml:"id,attr"`
	Type  string    `xml:"type,attr"`
	Level bool      `xml:"level,attr"`
	Width *odrWidth `xml:"width,omitempty"`
}

type odrWidth struct {
	SOffset float64 `xml:"sOffset,attr"`
	A       float64 `xml:"a,attr"`
	B       float64 `xml:"b,attr"`
	C       float64 `xml:"c,attr"`
	D       float64 `xml:"d,attr"`
}

// OpenDRIVEHeading converts a plan-view heading, measured from +Y, into the
// OpenDRIVE convention measured from +X
func OpenDRIVEHeading(heading float64) float64 {
	return geometry.NormalizeAngle(heading + math.Pi/2)
}

// WriteOpenDRIVE writes one road with a single line geometry per segment
func WriteOpenDRIVE(w io.Writer, segments []*road.Segment, opts Options) error {
	bounds := geometry.NewBoundingBox()
	for _, seg := range segments {
		bounds.Extend(seg.Start)
		bounds.Extend(seg.End)
	}

	doc := odrDocument{
		Header: odrHeader{
			RevMajor: 1,
			RevMinor: 6,
			Name:     opts.Name,
			Date:     time.Now().UTC().Format(time.RFC3339),
		},
	}
	if !bounds.IsEmpty() {
		doc.Header.North = bounds.Max.Y
		doc.Header.South = bounds.Min.Y
		doc.Header.East = bounds.Max.X
		doc.Header.West = bounds.Min.X
	}

	for _, seg := range segments {
		doc.Roads = append(doc.Roads, odrRoad{
			Name:     fmt.Sprintf("%s %d", road.DefaultMeshName, seg.ConnectionID),
			Length:   seg.Length,
			ID:       strconv.Itoa(seg.ConnectionID),
			Junction: "-1",
			PlanView: odrPlanView{Geometry: []odrGeometry{{
				S:      0,
				X:      seg.Start.X,
				Y:      seg.Start.Y,
				Hdg:    OpenDRIVEHeading(seg.Heading),
				Length: seg.Length,
				Line:   &struct{}{},
			}}},
			Lanes: odrLanes{Section: laneSection()},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode OpenDRIVE: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// laneSection has one driving lane on each side, matching the strip mesh
func laneSection() odrLaneSection {
	width := func() *odrWidth { return &odrWidth{A: mesh.StripHalfWidth} }
	return odrLaneSection{
		Left:   odrLaneGroup{Lanes: []odrLane{{ID: 1, Type: "driving", Width: width()}}},
		Center: odrLaneGroup{Lanes: []odrLane{{ID: 0, Type: "none"}}},
		Right:  odrLaneGroup{Lanes: []odrLane{{ID: -1, Type: "driving", Width: width()}}},
	}
}
