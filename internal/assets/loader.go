package assets

// AssetLoader loads stylesheets by name.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist and
	// ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}

// DefaultStyleName is the name of the built-in page style.
const DefaultStyleName = "default"

// DefaultCodeStyleName is the chroma style used for code highlighting.
const DefaultCodeStyleName = "github"
