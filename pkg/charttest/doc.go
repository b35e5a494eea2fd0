// Package charttest provides fakes for testing plot behavior without a real
// rendering surface: a scriptable data source, a surface that materializes
// inspectable nodes, and pointer event constructors.
package charttest
