// Package tracker decodes, validates, and updates the project collection.
//
// The data file (data.json) holds a single JSON array of projects:
//
//	[
//	  {
//	    "name": "Alpha",
//	    "tasks": [
//	      {
//	        "id": 1,
//	        "description": "write spec",
//	        "completed": false
//	      }
//	    ]
//	  }
//	]
//
// # Decoding
//
// An empty (zero-length) document decodes to an empty collection; this is
// the state of a fresh install. Any other document must be valid JSON and
// pass the embedded JSON Schema (draft 2020-12). Failures are reported as
// *MalformedDataError and are never replaced with an empty collection.
//
// # Operations
//
// Repository operations (AddProject, AddTask, CompleteTask and the listing
// helpers) work on an already-loaded Collection and report an Outcome.
// "Not found", "already exists" and "already completed" are outcomes, not
// errors. Outcome.Changed reports whether the collection needs saving.
//
// # Task IDs
//
// A new task gets the id of the project's last task plus one, or 1 when the
// project has no tasks. Tasks are never removed or reordered, so this equals
// the maximum id plus one in every reachable state.
//
// # File Format
//
// When encoding, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (via JSON marshaling)
//   - [] for empty lists, never null
package tracker
