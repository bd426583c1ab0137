package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/tris/pkg/math3d"
	"github.com/taigrr/tris/pkg/render"
)

// ErrExternalBuffer is returned for buffers whose data was not embedded or
// loaded alongside the document.
var ErrExternalBuffer = errors.New("models: external buffers not supported")

// LoadGLB loads a binary glTF (.glb) or .gltf file into a mesh.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := Decode(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)

	render.Logger().Debug("model loaded",
		"path", path,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
	)
	return mesh, nil
}

// Decode collects every triangle primitive of every mesh in doc into one
// mesh. Winding is kept as stored; coverage does not depend on it.
func Decode(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("")
	for _, m := range doc.Meshes {
		if mesh.Name == "" {
			mesh.Name = m.Name
		}
		if err := decodeMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func decodeMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Lines, points, strips and fans
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices == nil {
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{base + i, base + i + 1, base + i + 2})
			}
			continue
		}

		indices, err := readIndices(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			f := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
			for _, v := range f {
				if v >= len(mesh.Vertices) {
					return fmt.Errorf("index %d out of range (%d vertices)", v-base, len(positions))
				}
			}
			mesh.Faces = append(mesh.Faces, f)
		}
	}
	return nil
}

// accessorBytes returns the buffer backing an accessor together with the
// first byte and the element stride.
func accessorBytes(doc *gltf.Document, idx, elemSize int) ([]byte, int, int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, 0, 0, fmt.Errorf("accessor %d out of range", idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.BufferView == nil {
		return nil, 0, 0, errors.New("accessor has no buffer view")
	}

	if bv := *accessor.BufferView; bv < 0 || bv >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range", bv)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		if buffer.URI != "" {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrExternalBuffer, buffer.URI)
		}
		return nil, 0, 0, errors.New("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if accessor.Count > 0 {
		end := start + (accessor.Count-1)*stride + elemSize
		if end > len(buffer.Data) {
			return nil, 0, 0, fmt.Errorf("accessor reads %d bytes past buffer end", end-len(buffer.Data))
		}
	}
	return buffer.Data, start, stride, nil
}

// readPositions reads a float VEC3 accessor.
func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, idx, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		off := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return result, nil
}

// readIndices reads an unsigned SCALAR accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		off := start + i*stride
		switch size {
		case 1:
			result[i] = int(data[off])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return result, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
