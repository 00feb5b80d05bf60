package lang

func init() {
	for _, l := range []*Language{
		{Name: "python", Extensions: []string{".py"}},
		{Name: "javascript", Extensions: []string{".js"}},
		{Name: "typescript", Extensions: []string{".ts"}},
		{Name: "java", Extensions: []string{".java"}},
		{Name: "cpp", Extensions: []string{".cpp"}},
		{Name: "c", Extensions: []string{".c"}},
		{Name: "rust", Extensions: []string{".rs"}},
		{Name: "go", Extensions: []string{".go"}},
		{Name: "php", Extensions: []string{".php"}},
		{Name: "ruby", Extensions: []string{".rb"}},
	} {
		Languages[l.Name] = l
	}
}
