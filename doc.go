// Copyright 2023 the jotson authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package jotson reads and writes JSON documents with a permissive,
// comment-aware parser and a family of presentation-oriented writers.
//
// The parser is a hand-written, single-pass lexer plus recursive descent
// over an in-memory byte range.  It builds a Value tree, records the byte
// range of every node for later diagnostics, optionally attaches // and
// /* */ comments to their neighboring values, and accumulates structured
// errors instead of stopping at the first one.
//
// Beyond RFC 8259, the default dialect accepts comments, dropped null
// placeholders ([1,,2] and trailing commas), and numeric object keys.
// StrictMode turns all of these off and additionally requires the root
// to be an array or an object.
//
// Three writers serialize a Value tree back to text: CompactWriter emits
// the shortest form, StyledWriter produces an indented human-readable
// layout with comments preserved, and StyledStreamWriter is the same
// layout engine over an io.Writer.
package jotson
