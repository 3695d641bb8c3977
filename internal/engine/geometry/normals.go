package geometry

import "github.com/go-gl/mathgl/mgl32"

// SmoothNormals averages the normals of every vertex sharing a position,
// turning flat face normals into per-vertex normals. Vertices whose
// normals cancel out keep their face normal.
func SmoothNormals(positions, normals []float32) []float32 {
	n := len(positions) / PositionComponents
	out := make([]float32, len(normals))
	copy(out, normals)
	if len(normals) != n*NormalComponents {
		return out
	}

	sums := make(map[mgl32.Vec3]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		p := vec3At(positions, i)
		sums[p] = sums[p].Add(vec3At(normals, i))
	}

	for i := 0; i < n; i++ {
		sum := sums[vec3At(positions, i)]
		if sum.Len() < 1e-6 {
			continue
		}
		s := sum.Normalize()
		copy(out[i*3:i*3+3], s[:])
	}
	return out
}

func vec3At(a []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{a[i*3], a[i*3+1], a[i*3+2]}
}

// Transform returns a copy of d with positions moved by m and normals
// rotated by its upper 3x3 and renormalized. Colors, texcoords and
// indices are copied unchanged.
func Transform(d Data, m mgl32.Mat4) Data {
	out := Data{
		Positions: make([]float32, len(d.Positions)),
		Normals:   make([]float32, len(d.Normals)),
		Colors:    append([]float32(nil), d.Colors...),
		TexCoords: append([]float32(nil), d.TexCoords...),
		Indices:   append([]uint16(nil), d.Indices...),
	}

	for i := 0; i+2 < len(d.Positions); i += PositionComponents {
		p := mgl32.TransformCoordinate(mgl32.Vec3{d.Positions[i], d.Positions[i+1], d.Positions[i+2]}, m)
		copy(out.Positions[i:i+3], p[:])
	}

	rot := m.Mat3()
	for i := 0; i+2 < len(d.Normals); i += NormalComponents {
		n := rot.Mul3x1(mgl32.Vec3{d.Normals[i], d.Normals[i+1], d.Normals[i+2]})
		if n.Len() > 1e-6 {
			n = n.Normalize()
		}
		copy(out.Normals[i:i+3], n[:])
	}
	return out
}
