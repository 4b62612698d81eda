// Package ans provides the in-memory answer store: typed values, the repeat
// tree that holds them, named answers and the case-insensitive collection of
// answers that an answer file describes.
//
// # Overview
//
// An answer file names a set of answers. Each [Answer] is the root of a small
// tree of [Node] values. A node is either a leaf holding one [Value] or a
// repeat holding an ordered list of child nodes, which may themselves be
// repeats. The depth of the tree is defined by the data, not by a schema.
//
//	Author Full Name        repeat
//	├── [0]                 repeat
//	│   ├── [0] "A"         leaf
//	│   └── [1] unanswered  leaf
//	└── [1]                 repeat (empty)
//
// # Values
//
// Values are one of five kinds, see [ValueType]. Every value may be
// unanswered, meaning it is present in the tree but carries no user data.
// Readers must check [Value.IsAnswered] before looking at the payload.
//
//	v, err := ans.GetValue[ans.TextValue](a, 0, 0)
//	if err != nil {
//	    return err
//	}
//	if v.IsAnswered() {
//	    fmt.Println(v.Value)
//	}
//
// # Indexing
//
// Accessors take zero or more indices. [Resolve] maps them onto the tree. An
// index that is missing or out of range selects child 0, and indices left
// over once a leaf is reached are ignored, so a doubly repeated answer read
// with no indices yields its first value.
//
// # Collections
//
// A [Collection] maps names to answers. Lookups fold case, output keeps the
// name as it was given, and answers are kept in insertion order.
//
// A Collection and the answers in it are not safe for concurrent use. Each
// collection belongs to a single caller at a time; hand it over or Clone it
// rather than sharing it.
//
// Reading and writing answer files is done by the parse and encode packages.
package ans
