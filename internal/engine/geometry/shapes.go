package geometry

// Face colors of the square pyramid.
var (
	colorBase  = [4]float32{0, 0, 1, 1}
	colorFront = [4]float32{1, 0, 0, 1}
	colorRight = [4]float32{1, 1, 0, 1}
	colorBack  = [4]float32{1, 0, 1, 1}
	colorLeft  = [4]float32{0, 1, 1, 1}
)

// SquarePyramid returns a pyramid with a unit square base on y=0 and its
// apex at (0, 1, 0). The base is a quad of 4 vertices; each side face
// re-declares its 3 corners so it keeps a flat normal and color.
func SquarePyramid() Data {
	a := [3]float32{-0.5, 0, -0.5}
	b := [3]float32{0.5, 0, -0.5}
	c := [3]float32{0.5, 0, 0.5}
	d := [3]float32{-0.5, 0, 0.5}
	e := [3]float32{0, 1, 0}

	type face struct {
		corners [][3]float32
		normal  [3]float32
		color   [4]float32
		uv      [][2]float32
	}
	sideUV := [][2]float32{{0, 0}, {1, 0}, {0.5, 1}}
	faces := []face{
		{[][3]float32{a, b, c, d}, [3]float32{0, -1, 0}, colorBase, [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		{[][3]float32{d, c, e}, [3]float32{0, 0.4472, 0.8944}, colorFront, sideUV},
		{[][3]float32{c, b, e}, [3]float32{0.8944, 0.4472, 0}, colorRight, sideUV},
		{[][3]float32{b, a, e}, [3]float32{0, 0.4472, -0.8944}, colorBack, sideUV},
		{[][3]float32{a, d, e}, [3]float32{-0.8944, 0.4472, 0}, colorLeft, sideUV},
	}

	var data Data
	for _, f := range faces {
		for i, p := range f.corners {
			data.Positions = append(data.Positions, p[:]...)
			data.Normals = append(data.Normals, f.normal[:]...)
			data.Colors = append(data.Colors, f.color[:]...)
			data.TexCoords = append(data.TexCoords, f.uv[i][:]...)
		}
	}

	data.Indices = []uint16{
		0, 1, 2, 2, 3, 0, // base
		4, 5, 6, // front
		7, 8, 9, // right
		10, 11, 12, // back
		13, 14, 15, // left
	}
	return data
}

// Quad returns a square of side 2*half on the z=0 plane, facing +Z,
// drawn as two triangles. Vertex colors are white.
func Quad(half float32) Data {
	return Data{
		Positions: []float32{
			-half, half, 0,
			-half, -half, 0,
			half, -half, 0,
			half, half, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Colors: []float32{
			1, 1, 1, 1,
			1, 1, 1, 1,
			1, 1, 1, 1,
			1, 1, 1, 1,
		},
		TexCoords: []float32{
			0, 1,
			0, 0,
			1, 0,
			1, 1,
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}
