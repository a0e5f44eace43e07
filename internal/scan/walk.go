package scan

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/option"
)

// recognizedExt mirrors internal/lang's extension table; kept separate
// so scan doesn't need to import internal/lang just to filter a file
// listing.
var recognizedExt = map[string]bool{
	".py": true, ".java": true, ".c": true, ".h": true,
	".cpp": true, ".cc": true, ".cxx": true, ".hpp": true,
	".js": true, ".mjs": true, ".jsx": true, ".ts": true, ".tsx": true,
}

// Files lists every recognizable source file under root, recursively,
// using afs.Service so the CLI's project-scan mode works uniformly over
// a local directory or any afs-supported remote URL (s3://, gs://, ...).
func Files(ctx context.Context, root string) ([]string, error) {
	fs := afs.New()
	objects, err := fs.List(ctx, root, option.NewRecursive(true))
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, obj := range objects {
		if obj.IsDir() {
			continue
		}
		if recognizedExt[strings.ToLower(filepath.Ext(obj.Name()))] {
			paths = append(paths, obj.URL())
		}
	}
	return paths, nil
}
