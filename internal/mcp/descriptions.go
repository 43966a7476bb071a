package mcp

// describeDetectGodObjects documents the detect_god_objects tool for the
// calling model: what it measures, when to reach for it, and how to read
// the thresholds a verdict is scored against.
func describeDetectGodObjects() string {
	return `Scans a directory tree for god files, god classes, and god methods,
and suggests how to split a flagged class using unsupervised clustering
of its methods.

USE WHEN:
- Triaging a codebase for refactoring candidates
- Deciding whether a class has outgrown a single responsibility
- Looking for a starting decomposition before a manual extraction

INTERPRETING RESULTS:
- A god file has too many classes or too many total lines for one file.
- A god class exceeds line count, method count, or complexity thresholds.
- A god method exceeds line count, complexity, or parameter count
  thresholds; its violation score weighs complexity over raw size.
- Clusters are only computed for flagged classes and group methods that
  share responsibilities, each with a suggested name, cohesion score, and
  shared dependencies.

OPTIONS:
- paths: directories to scan. Defaults to the current directory.
- config: path to a godscan config file overriding default thresholds.
- format: toon (default), json, or text.`
}
