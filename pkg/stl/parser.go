package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

const (
	headerSize = 80
	facetSize  = 50
)

// ErrUnknownFormat is returned for input that is neither ASCII nor binary STL
var ErrUnknownFormat = errors.New("not an STL file")

// facet is the little-endian binary record of one triangle
type facet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

func (f facet) triangle() geometry.Triangle {
	vec := func(v [3]float32) geometry.Vector3 {
		return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
	}
	return geometry.NewTriangle(vec(f.Normal), vec(f.Vertices[0]), vec(f.Vertices[1]), vec(f.Vertices[2]))
}

func toFacet(t geometry.Triangle) facet {
	vec := func(v geometry.Vector3) [3]float32 {
		return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	return facet{
		Normal:   vec(t.Normal),
		Vertices: [3][3]float32{vec(t.V1), vec(t.V2), vec(t.V3)},
	}
}

// Parse reads an ASCII or binary STL file
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// LoadMesh reads an STL file into an indexed mesh
func LoadMesh(filename string) (*mesh.Mesh, error) {
	model, err := Parse(filename)
	if err != nil {
		return nil, err
	}
	return model.Mesh(), nil
}

// Read decodes STL data. Binary files are recognised by their facet count
// matching the data size, so binary headers starting with "solid" are
// still read as binary.
func Read(r io.ReadSeeker) (*Model, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind: %w", err)
	}

	head := make([]byte, headerSize+4)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	head = head[:n]
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind: %w", err)
	}

	switch {
	case isBinary(head, size):
		return decodeBinary(r)
	case bytes.HasPrefix(head, []byte("solid")):
		return decodeASCII(r)
	}
	return nil, ErrUnknownFormat
}

func isBinary(head []byte, size int64) bool {
	if len(head) < headerSize+4 {
		return false
	}
	count := int64(binary.LittleEndian.Uint32(head[headerSize:]))
	return size == headerSize+4+count*facetSize
}

func decodeBinary(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model := NewModel(strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))))

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model.Triangles = make([]geometry.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		var f facet
		if err := binary.Read(br, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangles(f.triangle())
	}
	return model, nil
}

func decodeASCII(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	model := NewModel("")

	var (
		normal   geometry.Vector3
		vertices []geometry.Vector3
		line     int
	)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")

		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet", line)
			}
			v, err := parseVector(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normal = v
			vertices = vertices[:0]

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", line)
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices", line, len(vertices))
			}
			model.AddTriangles(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid number %q", f)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}
