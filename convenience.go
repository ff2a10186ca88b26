package heightfield

// LoadImage reads a packed-height (or grayscale) PNG heightfield using the
// default collaborators. Grid dimensions come from the decoded image, so no
// width/height parameters are needed.
func LoadImage(path string, minHeight, maxHeight float64) (*Field, error) {
	return defaultLoader.Load(path, 0, 0, minHeight, maxHeight)
}

// LoadImage32 is the float32-native variant of LoadImage.
func LoadImage32(path string, minHeight, maxHeight float64) (*Field32, error) {
	return defaultLoader.Load32(path, 0, 0, minHeight, maxHeight)
}

// LoadRaw reads a headerless 8- or 16-bit RAW heightfield using the default
// collaborators. width and height describe the file's element grid and must
// both be at least 2; maxHeight must not be negative. The bit depth is
// inferred from the file size.
func LoadRaw(path string, width, height int, minHeight, maxHeight float64) (*Field, error) {
	return defaultLoader.Load(path, width, height, minHeight, maxHeight)
}

// LoadRaw32 is the float32-native variant of LoadRaw.
func LoadRaw32(path string, width, height int, minHeight, maxHeight float64) (*Field32, error) {
	return defaultLoader.Load32(path, width, height, minHeight, maxHeight)
}
