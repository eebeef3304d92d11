// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// A document goes through these stages:
//   - SplitLines normalizes line endings and drops blank lines
//   - Segment partitions the lines into typed parse units
//   - RenderAll renders the units, in parallel chunks, with RenderUnit
//   - AssemblePage wraps the joined fragments in the page templates
//
// Optional post-processing stages operate on the assembled page:
// CSSInjection adds a stylesheet and RewriteMarkdownLinks points links to
// Markdown files at their HTML output.
//
// Inline markup inside a unit is handled by FormatInline. Code blocks are
// highlighted by the highlight package and every fragment is produced from
// the templates of a templates.Store.
package pipeline
