package core

// Size describes the dimensions of a grid or surface.
type Size struct {
	W int
	H int
}

// Cell addresses one grid cell.
type Cell struct {
	Row int
	Col int
}
