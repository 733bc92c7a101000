/*
Package collect walks a directory tree in parallel and returns the file paths it finds.

	+-------------+
	|   Config    |
	| (Builder)   |
	+------+------+
	       |
	+------+------+
	|   Collect   |
	|  (Fan-out)  |
	+------+------+
	       |
	+------+------+      +-----------+
	|  ReadDir    +------+ Recovery  |
	|  (FS seam)  |      | (1 retry) |
	+-------------+      +-----------+

🎯 Purpose:
- Collect every file below a root directory into a flat slice
- Bound recursion with an optional depth limit
- Filter files by a pattern matched against the full path
- Rewrite matching paths with a hook
- Recover once from a failed directory read

🔄 Flow:
1. Build a Config with New and the With methods
2. Collect reads the root and starts one goroutine per entry
3. Directories recurse while the depth budget allows
4. Files are matched, rewritten and returned up the tree
5. Results are concatenated level by level

⚡ Rules:
- Patterns only ever filter files; directories are pruned by depth alone
- Depth 0 collects the root's own files and drops every subdirectory
- The first error cancels the traversal; there are no partial results
- A Recovery is consulted at most once per failed read

🔍 Example:

	paths, err := collect.New("./docs").
		WithDepth(1).
		MustWithTargetPattern(`\.md$`).
		WithHook(collect.ReplaceExtension("mutated")).
		Collect(ctx)
*/
package collect
