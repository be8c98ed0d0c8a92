package store

import "os"

// Option configures a file persister.
type Option func(*options)

type options struct {
	indent int
	ext    string
	perm   os.FileMode
}

func newOptions(ext string, opts []Option) options {
	o := options{indent: 2, ext: ext, perm: 0o644}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIndent sets the number of spaces used to indent nested values.
func WithIndent(n int) Option {
	return func(o *options) {
		o.indent = n
	}
}

// WithExtension overrides the file extension, dot included.
func WithExtension(ext string) Option {
	return func(o *options) {
		o.ext = ext
	}
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}
