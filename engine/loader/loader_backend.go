package loader

// loaderBackend defines the generic interface for importing asset templates from
// files or memory. Concrete implementations (e.g., gltfLoaderBackend) handle
// format-specific details.
type loaderBackend interface {
	// Load imports the asset at the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *assetTemplate: the immutable asset template
	//   - error: error if loading fails
	Load(path string) (*assetTemplate, error)

	// LoadBytes imports an asset held in memory.
	//
	// Parameters:
	//   - name: the name used for the asset root and relative buffer URIs
	//   - data: the raw file contents
	//   - isGLB: true if data is a GLB container, false for glTF JSON
	//
	// Returns:
	//   - *assetTemplate: the immutable asset template
	//   - error: error if loading fails
	LoadBytes(name string, data []byte, isGLB bool) (*assetTemplate, error)
}
