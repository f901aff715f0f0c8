package jotson

// Features configures which permissive extensions a Reader accepts.
type Features struct {
	// AllowComments accepts // and /* */ comments.  The lexer recognizes
	// comments either way; without this flag the parser reports a
	// comment found where it expects a value, member name or separator.
	AllowComments bool
	// StrictRoot requires the document root to be an array or an object.
	StrictRoot bool
	// AllowDroppedNullPlaceholders makes [,] and [1,,2] inject implicit
	// nulls, and tolerates trailing commas in arrays and objects.
	AllowDroppedNullPlaceholders bool
	// AllowNumericKeys accepts number tokens as object member names.
	AllowNumericKeys bool
}

// AllFeatures returns the lenient preset: every extension enabled and no
// root restriction.
func AllFeatures() Features {
	return Features{
		AllowComments:                true,
		StrictRoot:                   false,
		AllowDroppedNullPlaceholders: true,
		AllowNumericKeys:             true,
	}
}

// StrictMode returns the strict preset: extensions disabled, root must be
// an array or an object.
func StrictMode() Features {
	return Features{
		AllowComments:                false,
		StrictRoot:                   true,
		AllowDroppedNullPlaceholders: false,
		AllowNumericKeys:             false,
	}
}
