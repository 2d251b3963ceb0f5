package actionserver

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/action-repo-api/internal/shared/errors"
)

// StaticFiles serves files from a public directory for requests no route matched.
// The zero value serves nothing and answers every request with the not-found envelope.
type StaticFiles struct {
	root string
}

// NewStaticFiles serves files below root.
func NewStaticFiles(root string) StaticFiles {
	return StaticFiles{root: root}
}

// Serve is registered as the router's NoRoute handler.
func (s StaticFiles) Serve(c *gin.Context) {
	if name, ok := s.resolve(c.Request); ok && s.serveFile(c, name) {
		return
	}
	respondProblem(c, apierrors.ErrEndpointNotFound)
}

// serveFile writes name with http.ServeContent. c.File would redirect any
// path ending in /index.html to "./", which is the JSON root route here.
func (s StaticFiles) serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}

func (s StaticFiles) resolve(r *http.Request) (string, bool) {
	if s.root == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		return "", false
	}
	// Cleaning against "/" keeps the lookup inside root.
	rel := path.Clean("/" + r.URL.Path)
	name := filepath.Join(s.root, filepath.FromSlash(rel))
	info, err := os.Stat(name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		name = filepath.Join(name, "index.html")
		info, err = os.Stat(name)
		if err != nil || info.IsDir() {
			return "", false
		}
	}
	return name, true
}
