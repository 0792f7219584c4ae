// Package mcp exposes the game over the Model Context Protocol.
//
// The Client is a thin proxy: every tool call is translated into a request
// against the REST API, so an MCP host plays through exactly the same
// endpoints as any other client. Board-bearing tools render the snapshot as
// text with the console package.
package mcp
