package singleton

// settings collects option values before a Wrapper is built.
type settings struct {
	name       string
	threadSafe bool
	strict     bool
}

func defaultSettings(name string) settings {
	return settings{name: name, threadSafe: true}
}

// Option configures a Wrapper in New.
type Option func(*settings)

// WithThreadSafe controls whether first construction is serialized by a mutex.
// The default is true.
func WithThreadSafe(on bool) Option {
	return func(s *settings) { s.threadSafe = on }
}

// WithStrict controls whether construction calls after the first fail with a
// MultipleInstantiationError. The default is false.
func WithStrict(on bool) Option {
	return func(s *settings) { s.strict = on }
}

// WithName overrides the name reported in errors. The default is the Go type
// name of the wrapped type. An empty name is ignored.
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithConfig applies every field set in cfg.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		for _, opt := range cfg.Options() {
			opt(s)
		}
	}
}
