package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
)

// triSentinel is the literal line terminating a .tri mesh file, regardless of
// whatever trailing content follows it in the file.
const triSentinel = "999 999 999 999 999 999 999 999 999"

// LoadMesh reads a whitespace-separated "x y z x y z x y z" triangle-per-line mesh
// file up to the sentinel line, producing one core.Primitive triangle per line. A
// malformed line is a resource I/O failure: it is logged and skipped, not fatal. A
// missing file logs a warning and returns an empty mesh.
func LoadMesh(path string, mat core.Material, logger core.Logger) []core.Primitive {
	file, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Printf("warning: failed to open mesh file %q: %v; using empty mesh\n", path, err)
		}
		return nil
	}
	defer file.Close()

	var triangles []core.Primitive
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == triSentinel {
			break
		}

		v0, v1, v2, err := parseTriangleLine(line)
		if err != nil {
			if logger != nil {
				logger.Printf("warning: skipping malformed mesh line %d in %q: %v\n", lineNum, path, err)
			}
			continue
		}
		triangles = append(triangles, geometry.NewTriangle(v0, v1, v2, mat))
	}

	return triangles
}

// parseTriangleLine parses nine whitespace-separated floats into three vertices.
func parseTriangleLine(line string) (v0, v1, v2 core.Vec3, err error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return v0, v1, v2, fmt.Errorf("expected 9 fields, got %d", len(fields))
	}

	var coords [9]float64
	for i, field := range fields {
		coords[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return v0, v1, v2, fmt.Errorf("field %d (%q): %w", i, field, err)
		}
	}

	v0 = core.NewVec3(coords[0], coords[1], coords[2])
	v1 = core.NewVec3(coords[3], coords[4], coords[5])
	v2 = core.NewVec3(coords[6], coords[7], coords[8])
	return v0, v1, v2, nil
}
