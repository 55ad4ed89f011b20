// Package platform contains OS integration and external tooling glue:
// filesystem helpers, atomic writes, playlist expansion, package manager
// installs, git clone, and OS open/reveal.
package platform
