package mesh_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/navmesh/mesh"
)

// Example demonstrates parsing two triangles that share a diagonal,
// merging them into a single convex quad, and writing the result back
// out in mesh v2 form.
func Example() {
	const body = `mesh
2
4 2
0 0 2 0 1
1 0 1 0
1 1 2 0 1
0 1 1 1
3 0 1 2 -1 -1 1
3 0 2 3 0 -1 -1
`
	st, err := mesh.Parse(strings.NewReader(body))
	if err != nil {
		fmt.Println("parse error:", err)

		return
	}

	fmt.Println("merges:", st.Merge())

	if err := st.Validate(); err != nil {
		fmt.Println("validate error:", err)

		return
	}

	var buf bytes.Buffer
	if err := st.Write(&buf); err != nil {
		fmt.Println("write error:", err)

		return
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	// merges: 1
	// mesh
	// 2
	// 4 1
	// 0 0 1 0
	// 1 0 1 0
	// 1 1 1 0
	// 0 1 1 0
	// 4 1 2 3 0 -1 -1 -1 -1
}
