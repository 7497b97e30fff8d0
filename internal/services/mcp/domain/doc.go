// Package domain defines MCP tool schemas and handlers for game synthesis,
// source emission, and optimization advice.
//
// The package is intentionally explicit about that mapping:
// - bind typed MCP tool inputs to a game specification,
// - route calls through the synthesis pipeline or the advisor,
// - and surface structured outputs that MCP clients can render.
package domain
