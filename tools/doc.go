// Package tools defines the Tool contract exposed to agent orchestrators:
// a typed invocation interface, a classified error taxonomy, the result
// envelope every call returns, and a registry that dispatches by tool name.
package tools
