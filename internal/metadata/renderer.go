package metadata

import (
	"fmt"
	"strings"
)

// Renderer resolves metadata URIs for a drop. The engine delegates all
// metadata resolution; swapping the renderer changes what clients see without
// touching sale or allocation state.
//
//go:generate mockgen -source=renderer.go -destination=../mocks/renderer.go -package=mocks -mock_names=Renderer=MockRenderer
type Renderer interface {
	// ItemURI returns the metadata URI for one item
	ItemURI(id uint64) string
	// CollectionURI returns the collection-level metadata URI
	CollectionURI() string
}

type baseRenderer struct {
	baseURI     string
	contractURI string
}

// NewBaseRenderer creates a renderer that appends the item id to a base URI
func NewBaseRenderer(baseURI, contractURI string) Renderer {
	return &baseRenderer{
		baseURI:     strings.TrimSuffix(baseURI, "/") + "/",
		contractURI: contractURI,
	}
}

func (r *baseRenderer) ItemURI(id uint64) string {
	return fmt.Sprintf("%s%d", r.baseURI, id)
}

func (r *baseRenderer) CollectionURI() string {
	return r.contractURI
}
