package debug

import (
	"fmt"
	"os"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/encode"
)

// Formula wraps a node so it renders in Unicode notation under the %s
// verb.
type Formula struct{ *ast.Node }

func (f Formula) String() string {
	return encode.Unicode(f.Node)
}

// Logf writes a debug message to stderr, rendering *ast.Node arguments
// in Unicode notation.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ast.Node:
			args[i] = encode.Unicode(x)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
