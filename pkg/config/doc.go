/*
Package config loads traversal definitions from files and turns them into collect.Config values.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Read a traversal definition from .yaml/.yml, .json or .hcl
- Validate it before any directory is touched
- Build the equivalent collect.Config

📄 Schema (YAML):

	root: ./docs
	depth: 1
	pattern: '\.md$'
	hook:
	  extension: mutated
	fallback: ./docs-archive
	concurrency: 8

The same fields exist in JSON. In HCL the hook is a block, and the process
environment is available as env:

	root    = "${env.HOME}/docs"
	pattern = "\\.md$"
	hook {
	  extension = "mutated"
	}

🔍 Example:

	cfg, err := config.Load(ctx, "collect.yaml")
	if err != nil {
		return err
	}
	c, err := cfg.Build()
	if err != nil {
		return err
	}
	paths, err := c.Collect(ctx)
*/
package config
