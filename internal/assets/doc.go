// Package assets provides the stylesheets injected into generated pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory holds one file per style:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// CodeCSS derives the rules for the code-* highlight classes from a chroma
// style, so the palette of fenced code blocks can be chosen independently of
// the page style.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
