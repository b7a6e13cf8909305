package boot

//go:generate mockgen -source=interfaces.go -destination=../mock/path_resolver_mock.go -package=mock

// PathResolver reports the base directory of the agent installation.
type PathResolver interface {
	// PackagePath returns the absolute directory containing the agent
	// package, or an error wrapping ErrPackageNotFound when the directory
	// cannot be determined.
	PackagePath() (string, error)
}
