package buildsys

// BuildSystem captures shared capabilities of external build drivers (Make,
// CMake, etc). It keeps the common lifecycle and environment setup;
// implementations add their own extras.
type BuildSystem interface {
	// Source sets the directory holding the build's source tree.
	Source(dir string)

	// Environment helper.
	Env(key, val string)

	// Build invokes the external build tool with the given argument tokens.
	Build(args ...string) error

	// Where artifacts land.
	OutputDir() string
}
