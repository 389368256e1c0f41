// Package mapping resolves tag-to-prefix mapping tables.
//
// A table maps sigil-prefixed tags (e.g. "@auth") to ordered lists of path
// prefixes. Tables come from an explicit [Source]: either an in-memory table
// or a JSON/YAML file resolved against the working directory. A file may
// expose the table directly or wrapped one level under a top-level "default"
// key; the unwrap happens at the loader boundary and is reported on the
// [Result].
//
// [Loader] owns the in-process cache. Callers that need to observe edits to
// the underlying file between loads call [Loader.Invalidate] first; no stale
// entry survives an invalidation.
package mapping
