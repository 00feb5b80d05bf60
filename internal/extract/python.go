package extract

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/phobologic/codewiki/internal/model"
)

// pythonFallbackRe recovers `def name(args)` declarations when the real
// parse fails.
var pythonFallbackRe = regexp.MustCompile(`def\s+(\w+)\s*\(([^)]*)\)`)

// pythonStrategy is the one grammar-aware extraction path: a full tree-sitter
// parse of the source, falling back to pythonFallbackRe on any parse failure.
// The fallback accepts a partial, lossy result rather than failing the file.
type pythonStrategy struct{}

func init() {
	register(pythonStrategy{}, "python")
}

func (pythonStrategy) Functions(text string) []model.FunctionRecord {
	source := []byte(text)

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return pythonFallback(text)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		// Syntax error somewhere in the file. Matching the exact-parse
		// path on a broken tree would report garbage, so take the regex
		// result for the whole file instead.
		return pythonFallback(text)
	}

	var records []model.FunctionRecord
	walk(root, func(n *sitter.Node) {
		if n.Type() != "function_definition" {
			return
		}

		name := "unknown"
		if nn := n.ChildByFieldName("name"); nn != nil {
			name = nodeText(nn, source)
		}

		kind := model.Function
		if findEnclosingClass(n) != nil {
			kind = model.Method
		}

		records = append(records, model.FunctionRecord{
			Name:   name,
			Line:   int(n.StartPoint().Row) + 1,
			Params: pythonParamNames(n.ChildByFieldName("parameters"), source),
			Doc:    pythonDocstring(n, source),
			Kind:   kind,
		})
	})
	return records
}

func pythonFallback(text string) []model.FunctionRecord {
	var records []model.FunctionRecord
	for _, m := range pythonFallbackRe.FindAllStringSubmatchIndex(text, -1) {
		records = append(records, model.FunctionRecord{
			Name:   text[m[2]:m[3]],
			Line:   lineAt(text, m[0]),
			Params: splitParams(text[m[4]:m[5]]),
			Kind:   model.Function,
		})
	}
	return records
}

// pythonParamNames returns parameter names in declaration order, including
// self. Typed, defaulted, and splat parameters contribute their identifier.
func pythonParamNames(params *sitter.Node, source []byte) []string {
	if params == nil {
		return nil
	}
	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "identifier":
			names = append(names, nodeText(child, source))
		case "typed_parameter", "default_parameter", "typed_default_parameter",
			"list_splat_pattern", "dictionary_splat_pattern":
			if id := firstIdentifier(child, source); id != "" {
				names = append(names, id)
			}
		}
	}
	return names
}

// pythonDocstring returns the docstring of a function definition: the first
// statement of the body when it is a bare string literal, quotes stripped.
func pythonDocstring(fn *sitter.Node, source []byte) string {
	body := fn.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return stripQuotes(nodeText(str, source))
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"""`, "'''", `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return strings.TrimSpace(s[len(q) : len(s)-len(q)])
		}
	}
	return s
}

// findEnclosingClass returns the class_definition containing a function
// definition, or nil for a module-level function.
func findEnclosingClass(funcNode *sitter.Node) *sitter.Node {
	parent := funcNode.Parent()
	if parent == nil {
		return nil
	}

	// Direct: func -> block -> class_definition
	if parent.Type() == "block" && parent.Parent() != nil && parent.Parent().Type() == "class_definition" {
		return parent.Parent()
	}

	// Decorated: func -> decorated_definition -> block -> class_definition
	if parent.Type() == "decorated_definition" {
		gp := parent.Parent()
		if gp != nil && gp.Type() == "block" && gp.Parent() != nil && gp.Parent().Type() == "class_definition" {
			return gp.Parent()
		}
	}

	return nil
}

func firstIdentifier(n *sitter.Node, source []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "identifier" {
			return nodeText(child, source)
		}
	}
	return ""
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// walk visits every node in the tree, depth first.
func walk(n *sitter.Node, fn func(*sitter.Node)) {
	fn(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), fn)
	}
}
